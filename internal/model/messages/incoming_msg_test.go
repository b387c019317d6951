package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/fx-converter/internal/clients/frankfurter"
	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/model/messages/mock"
	"max.ks1230/fx-converter/internal/model/storage"
)

type fixture struct {
	sender   *mock.MessageSenderMock
	provider *mock.RatesProviderMock
	model    *Service
}

func newFixture(m *minimock.Controller, locale string) fixture {
	sender := mock.NewMessageSenderMock(m)
	provider := mock.NewRatesProviderMock(m)
	cfg := mock.NewConfigMock(m)

	cfg.LocaleMock.Return(locale)
	cfg.DefaultFromMock.Return("USD")
	cfg.DefaultToMock.Return("PHP")
	cfg.DefaultAmountMock.Return("1")

	return fixture{
		sender:   sender,
		provider: provider,
		model:    NewService(sender, storage.NewInMemStorage(), provider, cfg),
	}
}

func (f fixture) send(text string) error {
	return f.model.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: 123})
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.provider.CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil)
	f.sender.SendMessageMock.
		Inspect(func(text string, userID int64) {
			assert.Contains(m, text, "Hello! I convert currencies")
			assert.Contains(m, text, "/convert")
			assert.Equal(m, int64(123), userID)
		}).
		Return(nil)

	err := f.send("/start")

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.sender.SendMessageMock.
		Inspect(func(text string, _ int64) {
			assert.True(m, len(text) > 0)
			assert.Contains(m, text, "/currencies")
		}).
		Return(nil)

	err := f.send("/none")

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), f.provider.CurrenciesBeforeCounter())
}

func Test_OnCurrenciesCommand_ShouldListSortedCodes(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.provider.CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil)
	f.sender.SendMessageMock.
		Expect("PHP, USD", int64(123)).
		Return(nil)

	assert.NoError(t, f.send("/currencies"))
}

func Test_OnCurrenciesFailure_ShouldReplyWithLocalizedError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "ru")

	f.provider.CurrenciesMock.Return(nil, &frankfurter.NetworkError{Op: "latest", Status: 503})
	f.sender.SendMessageMock.
		Expect("Ошибка: Сетевой ответ был неудовлетворительным", int64(123)).
		Return(nil)

	err := f.send("/currencies")

	assert.Error(t, err)
}

func Test_OnConvertCommand_ShouldReplyWithResultAndRate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.provider.
		CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil).
		ConvertMock.
		Inspect(func(_ context.Context, amount float64, from, to string) {
			assert.Equal(m, 10.0, amount)
			assert.Equal(m, "USD", from)
			assert.Equal(m, "PHP", to)
		}).
		Return(560, nil)
	f.sender.SendMessageMock.
		Expect("10 USD = 560.0000 PHP\n1 USD = 56 PHP", int64(123)).
		Return(nil)

	assert.NoError(t, f.send("/convert 10"))
}

func Test_OnPlainAmountAfterConvert_ShouldRecalculateWithoutFetch(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	var replies []string
	f.provider.
		CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil).
		ConvertMock.Return(560, nil)
	f.sender.SendMessageMock.Set(func(text string, _ int64) error {
		replies = append(replies, text)
		return nil
	})

	assert.NoError(t, f.send("/convert 10"))
	assert.NoError(t, f.send("20"))

	assert.Equal(t, uint64(1), f.provider.ConvertAfterCounter())
	assert.Equal(t, "20 USD = 1120.0000 PHP\n1 USD = 56 PHP", replies[1])
}

func Test_OnInvalidAmount_ShouldNotCallAPI(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "ru")

	f.provider.CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil)
	f.sender.SendMessageMock.
		Expect("Введите сумму больше 0", int64(123)).
		Return(nil)

	assert.NoError(t, f.send("/convert -4"))
	assert.Equal(t, uint64(0), f.provider.ConvertBeforeCounter())
}

func Test_OnSelectorChange_ShouldForgetRate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	var replies []string
	f.provider.
		CurrenciesMock.Return(currency.Codes{"USD", "PHP", "EUR"}, nil).
		ConvertMock.Return(560, nil)
	f.sender.SendMessageMock.Set(func(text string, _ int64) error {
		replies = append(replies, text)
		return nil
	})

	assert.NoError(t, f.send("/convert 10"))
	assert.NoError(t, f.send("/to eur"))
	assert.NoError(t, f.send("20"))

	assert.Equal(t, "Selected: USD → EUR", replies[1])
	assert.Equal(t, "No rate yet, use /convert", replies[2])
}

func Test_OnUnknownCurrency_ShouldReject(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.provider.CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil)
	f.sender.SendMessageMock.
		Expect("Unknown currency: XYZ", int64(123)).
		Return(nil)

	assert.NoError(t, f.send("/from xyz"))
}

func Test_OnConvertFailure_ShouldReportAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.provider.
		CurrenciesMock.Return(currency.Codes{"USD", "PHP"}, nil).
		ConvertMock.Return(0, &frankfurter.NetworkError{Op: "convert", Err: errors.New("connection refused")})
	f.sender.SendMessageMock.
		Expect("Error: convert: connection refused", int64(123)).
		Return(nil)

	err := f.send("/convert 10")

	assert.Error(t, err)
}

func Test_OnPlainText_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.sender.SendMessageMock.
		Inspect(func(text string, _ int64) {
			assert.Contains(m, text, "/currencies")
			assert.NotContains(m, text, "greater than 0")
		}).
		Return(nil)

	assert.NoError(t, f.send("hello there"))
	assert.Equal(t, uint64(0), f.provider.CurrenciesBeforeCounter())
}

func Test_OnPlainNonPositiveNumber_ShouldAnswerWithPrompt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	f.sender.SendMessageMock.
		Expect("Enter an amount greater than 0", int64(123)).
		Return(nil)

	assert.NoError(t, f.send("-3"))
}

func Test_OnStopCommand_ShouldResetSelection(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, "en")

	var replies []string
	f.provider.
		CurrenciesMock.Return(currency.Codes{"USD", "PHP", "EUR"}, nil).
		ConvertMock.Return(560, nil)
	f.sender.SendMessageMock.Set(func(text string, _ int64) error {
		replies = append(replies, text)
		return nil
	})

	assert.NoError(t, f.send("/to eur"))
	assert.NoError(t, f.send("/convert 10"))
	assert.NoError(t, f.send("/stop"))
	assert.NoError(t, f.send("20"))

	assert.Equal(t, "Selection reset. Send /start to begin again", replies[2])
	assert.Equal(t, "No rate yet, use /convert", replies[3])
}

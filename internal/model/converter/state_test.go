package converter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/fx-converter/internal/entity/currency"
)

func readyState(t *testing.T) *State {
	t.Helper()
	st := New("usd", "PHP", "10")
	require.True(t, st.BeginCurrencies())
	require.True(t, st.FinishCurrencies(currency.Codes{"USD", "PHP"}, nil))
	return st
}

func Test_OnStartup_ShouldBeBusyUntilCurrenciesSettle(t *testing.T) {
	st := New("USD", "PHP", "1")
	assert.Equal(t, Idle, st.ListPhase())

	require.True(t, st.BeginCurrencies())
	assert.True(t, st.Busy())
	assert.False(t, st.CanConvert())
	assert.False(t, st.BeginCurrencies())

	_, err := st.BeginConvert()
	assert.ErrorIs(t, err, ErrNotReady)

	require.True(t, st.FinishCurrencies(currency.Codes{"USD", "PHP", "USD"}, nil))
	assert.Equal(t, Succeeded, st.ListPhase())
	assert.Equal(t, currency.Codes{"PHP", "USD"}, st.Currencies())
	assert.True(t, st.CanConvert())
}

func Test_OnFailedStartup_ShouldLeaveListEmptyAndReportError(t *testing.T) {
	st := New("USD", "PHP", "1")
	st.BeginCurrencies()
	st.FinishCurrencies(currency.Codes{"USD"}, errors.New("boom"))

	assert.Equal(t, Failed, st.ListPhase())
	assert.Empty(t, st.Currencies())
	assert.EqualError(t, st.Err(), "boom")
	assert.True(t, st.Ready())
}

func Test_OnConversion_ShouldStoreResultAndRate(t *testing.T) {
	st := readyState(t)

	req, err := st.BeginConvert()
	require.NoError(t, err)
	assert.Equal(t, "USD", req.From)
	assert.Equal(t, "PHP", req.To)
	assert.Equal(t, 10.0, req.Amount)
	assert.True(t, st.Busy())

	_, err = st.BeginConvert()
	assert.ErrorIs(t, err, ErrBusy)

	assert.True(t, st.FinishConvert(req, 560, nil))
	assert.False(t, st.Busy())
	assert.Equal(t, Succeeded, st.ConversionPhase())

	result, ok := st.Result()
	assert.True(t, ok)
	assert.Equal(t, 560.0, result)
	rate, ok := st.Rate()
	assert.True(t, ok)
	assert.Equal(t, 56.0, rate)

	shown, ok := st.Display()
	assert.True(t, ok)
	assert.Equal(t, "560.0000", shown)

	st.SetAmount("20")
	shown, _ = st.Display()
	assert.Equal(t, "1120.0000", shown)
}

func Test_OnInvalidAmount_ShouldNotStartConversion(t *testing.T) {
	st := readyState(t)

	for _, text := range []string{"0", "-5", "ten", ""} {
		st.SetAmount(text)
		_, err := st.BeginConvert()
		assert.True(t, IsValidationError(err), text)
		assert.Equal(t, err, st.Err())
		assert.False(t, st.Busy())
		assert.Equal(t, Idle, st.ConversionPhase())
	}
}

func Test_OnMalformedCode_ShouldFailValidation(t *testing.T) {
	st := readyState(t)
	st.SelectTo("PH")

	_, err := st.BeginConvert()
	require.True(t, IsValidationError(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "to", ve.Field)
}

func Test_OnSelectorChange_ShouldClearRateAndResult(t *testing.T) {
	for name, change := range map[string]func(*State){
		"from": func(st *State) { st.SelectFrom("EUR") },
		"to":   func(st *State) { st.SelectTo("EUR") },
	} {
		st := readyState(t)
		req, _ := st.BeginConvert()
		st.FinishConvert(req, 560, nil)

		change(st)

		_, ok := st.Rate()
		assert.False(t, ok, name)
		_, ok = st.Result()
		assert.False(t, ok, name)
		_, ok = st.Display()
		assert.False(t, ok, name)
	}
}

func Test_OnSameSelection_ShouldKeepRate(t *testing.T) {
	st := readyState(t)
	req, _ := st.BeginConvert()
	st.FinishConvert(req, 560, nil)

	st.SelectFrom("usd")

	_, ok := st.Rate()
	assert.True(t, ok)
}

func Test_OnSelectorChangeWhileLoading_ShouldDropStaleResponse(t *testing.T) {
	st := readyState(t)
	req, err := st.BeginConvert()
	require.NoError(t, err)

	st.SelectTo("EUR")
	assert.True(t, st.Busy())

	assert.False(t, st.FinishConvert(req, 560, nil))
	assert.False(t, st.Busy())
	_, ok := st.Rate()
	assert.False(t, ok)
	assert.NoError(t, st.Err())
}

func Test_OnFailedConversion_ShouldKeepCurrenciesAndPriorRate(t *testing.T) {
	st := readyState(t)
	req, _ := st.BeginConvert()
	st.FinishConvert(req, 560, nil)

	req, _ = st.BeginConvert()
	assert.True(t, st.FinishConvert(req, 0, errors.New("offline")))

	assert.Equal(t, Failed, st.ConversionPhase())
	assert.False(t, st.Busy())
	assert.EqualError(t, st.Err(), "offline")
	assert.Equal(t, currency.Codes{"PHP", "USD"}, st.Currencies())
	rate, ok := st.Rate()
	assert.True(t, ok)
	assert.Equal(t, 56.0, rate)
}

func Test_OnNewAttempt_ShouldClearPreviousError(t *testing.T) {
	st := readyState(t)
	st.SetAmount("0")
	_, _ = st.BeginConvert()
	require.Error(t, st.Err())

	st.SetAmount("5")
	_, err := st.BeginConvert()
	require.NoError(t, err)
	assert.NoError(t, st.Err())
}

func Test_OnClose_ShouldIgnoreLateResponses(t *testing.T) {
	st := New("USD", "PHP", "10")
	st.BeginCurrencies()
	st.Close()
	assert.False(t, st.FinishCurrencies(currency.Codes{"USD"}, nil))
	assert.Empty(t, st.Currencies())

	st = readyState(t)
	req, _ := st.BeginConvert()
	st.Close()
	assert.False(t, st.FinishConvert(req, 560, nil))
	_, ok := st.Result()
	assert.False(t, ok)

	_, err := st.BeginConvert()
	assert.ErrorIs(t, err, ErrClosed)
}

func Test_OnUnknownRequest_ShouldBeIgnored(t *testing.T) {
	st := readyState(t)
	assert.False(t, st.FinishConvert(Request{ID: 42}, 1, nil))
	assert.False(t, st.FinishConvert(Request{}, 1, nil))
}

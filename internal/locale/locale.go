package locale

import (
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/fx-converter/internal/clients/frankfurter"
	"max.ks1230/fx-converter/internal/model/converter"
)

type Key int

const (
	Title Key = iota
	LoadingCurrencies
	AmountPlaceholder
	Convert
	Converting
	InvalidAmount
	ErrorPrefix
	NetworkFailure
	NotReady
	Busy
	PerUnit
	NoCurrencies
	Hello
	Usage
	UnknownCurrency
	NothingToShow
	Selected
	Help
	Bye
	RetryHint
)

type Catalog struct {
	name  string
	texts map[Key]string
}

const (
	English = "en"
	Russian = "ru"
)

var catalogs = map[string]map[Key]string{
	English: {
		Title:             "Currency Exchange",
		LoadingCurrencies: "Loading currencies...",
		AmountPlaceholder: "Amount",
		Convert:           "Convert",
		Converting:        "Converting...",
		InvalidAmount:     "Enter an amount greater than 0",
		ErrorPrefix:       "Error: ",
		NetworkFailure:    "the network response was not ok",
		NotReady:          "currencies are still loading",
		Busy:              "a conversion is already running",
		PerUnit:           "per unit",
		NoCurrencies:      "no currencies available",
		Hello:             "Hello! I convert currencies at live rates 💱",
		Usage: "/currencies - list supported currencies\n" +
			"/from CODE - source currency\n" +
			"/to CODE - target currency\n" +
			"/convert [AMOUNT] - convert\n" +
			"/stop - forget your selection\n" +
			"send a number to recalculate with the last rate",
		UnknownCurrency: "Unknown currency",
		NothingToShow:   "No rate yet, use /convert",
		Selected:        "Selected",
		Help:            "tab focus • ←/→ change currency • enter convert • esc quit",
		Bye:             "Selection reset. Send /start to begin again",
		RetryHint:       "ctrl+r to retry",
	},
	Russian: {
		Title:             "Обмен валют",
		LoadingCurrencies: "Загрузка валют...",
		AmountPlaceholder: "Сумма",
		Convert:           "Конвертировать",
		Converting:        "Конвертация...",
		InvalidAmount:     "Введите сумму больше 0",
		ErrorPrefix:       "Ошибка: ",
		NetworkFailure:    "Сетевой ответ был неудовлетворительным",
		NotReady:          "валюты ещё загружаются",
		Busy:              "конвертация уже выполняется",
		PerUnit:           "за единицу",
		NoCurrencies:      "нет доступных валют",
		Hello:             "Привет! Я конвертирую валюты по текущему курсу 💱",
		Usage: "/currencies - список валют\n" +
			"/from КОД - исходная валюта\n" +
			"/to КОД - целевая валюта\n" +
			"/convert [СУММА] - конвертировать\n" +
			"/stop - сбросить выбор\n" +
			"отправьте число, чтобы пересчитать по последнему курсу",
		UnknownCurrency: "Неизвестная валюта",
		NothingToShow:   "Курса ещё нет, используйте /convert",
		Selected:        "Выбрано",
		Help:            "tab фокус • ←/→ валюта • enter конвертировать • esc выход",
		Bye:             "Выбор сброшен. Отправьте /start, чтобы начать заново",
		RetryHint:       "ctrl+r - повторить",
	},
}

// For returns the catalog for name, falling back to English.
func For(name string) Catalog {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexAny(name, "-_"); i > 0 {
		name = name[:i]
	}
	texts, ok := catalogs[name]
	if !ok {
		name = English
		texts = catalogs[English]
	}
	return Catalog{name: name, texts: texts}
}

// Name is the catalog actually chosen, after fallback.
func (c Catalog) Name() string {
	return c.name
}

func (c Catalog) Text(k Key) string {
	if s, ok := c.texts[k]; ok {
		return s
	}
	return catalogs[English][k]
}

// Error renders err for the user. Validation problems get the fixed
// prompt; everything else is shown verbatim after the error prefix.
func (c Catalog) Error(err error) string {
	if err == nil {
		return ""
	}

	var ve *converter.ValidationError
	if errors.As(err, &ve) && ve.Field == "amount" {
		return c.Text(InvalidAmount)
	}

	var ne *frankfurter.NetworkError
	switch {
	case errors.As(err, &ne) && ne.Status != 0 && ne.Err == nil:
		return c.Text(ErrorPrefix) + c.Text(NetworkFailure)
	case errors.Is(err, converter.ErrNotReady):
		return c.Text(ErrorPrefix) + c.Text(NotReady)
	case errors.Is(err, converter.ErrBusy):
		return c.Text(ErrorPrefix) + c.Text(Busy)
	}
	return c.Text(ErrorPrefix) + errors.Cause(err).Error()
}

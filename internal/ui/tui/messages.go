package tui

import (
	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/model/converter"
)

type currenciesLoadedMsg struct {
	codes currency.Codes
	err   error
}

type convertedMsg struct {
	req   converter.Request
	value float64
	err   error
}

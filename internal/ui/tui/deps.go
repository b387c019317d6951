package tui

import (
	"context"

	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/locale"
	"max.ks1230/fx-converter/internal/model/converter"
)

// Converter performs the two network calls the view needs. Results are
// applied to the view state on the update loop, never inside the call.
type Converter interface {
	FetchCurrencies(ctx context.Context) (currency.Codes, error)
	FetchConversion(ctx context.Context, req converter.Request) (float64, error)
}

type Deps struct {
	Converter Converter
	Catalog   locale.Catalog

	From   string
	To     string
	Amount string
}

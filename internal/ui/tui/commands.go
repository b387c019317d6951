package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"max.ks1230/fx-converter/internal/model/converter"
)

func cmdLoadCurrencies(ctx context.Context, conv Converter) tea.Cmd {
	return func() tea.Msg {
		codes, err := conv.FetchCurrencies(ctx)
		return currenciesLoadedMsg{codes: codes, err: err}
	}
}

func cmdConvert(ctx context.Context, conv Converter, req converter.Request) tea.Cmd {
	return func() tea.Msg {
		value, err := conv.FetchConversion(ctx, req)
		return convertedMsg{req: req, value: value, err: err}
	}
}

package messages

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/locale"
	"max.ks1230/fx-converter/internal/logger"
	"max.ks1230/fx-converter/internal/model/converter"
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	currenciesCommand = "/currencies"
	fromCommand       = "/from"
	toCommand         = "/to"
	convertCommand    = "/convert"
	stopCommand       = "/stop"
)

//go:generate minimock -i ratesProvider -o ./mock/ -s "_mock.go"
//go:generate minimock -i config -o ./mock/ -s "_mock.go"

type ratesProvider interface {
	Currencies(ctx context.Context) (currency.Codes, error)
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type sessionStorage interface {
	Checkout(userID int64, init func() *converter.State) (*converter.State, func())
	Drop(userID int64)
}

type config interface {
	DefaultFrom() string
	DefaultTo() string
	DefaultAmount() string
	Locale() string
}

type handler func(ctx context.Context, arg string, st *converter.State) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	storage     sessionStorage
	converter   *converter.Service
	catalog     locale.Catalog

	defaultFrom   string
	defaultTo     string
	defaultAmount string
}

func newHandler(storage sessionStorage, provider ratesProvider, config config) *HandlerService {
	res := &HandlerService{
		storage:       storage,
		converter:     converter.NewService(provider),
		catalog:       locale.For(config.Locale()),
		defaultFrom:   config.DefaultFrom(),
		defaultTo:     config.DefaultTo(),
		defaultAmount: config.DefaultAmount(),
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[currenciesCommand] = s.handleCurrencies
	m[fromCommand] = s.handleFrom
	m[toCommand] = s.handleTo
	m[convertCommand] = s.handleConvert

	m[""] = s.handleAmount

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	// the session must not be checked out while it is dropped
	if cmd == stopCommand {
		s.storage.Drop(userID)
		return s.catalog.Text(locale.Bye), nil
	}

	h, ok := s.handlersMap[cmd]
	if !ok {
		return s.catalog.Text(locale.Usage), nil
	}

	st, release := s.storage.Checkout(userID, s.newState)
	defer release()

	return h(ctx, arg, st)
}

func (s *HandlerService) newState() *converter.State {
	return converter.New(s.defaultFrom, s.defaultTo, s.defaultAmount)
}

// ensureCurrencies runs the startup fetch until it has succeeded once.
func (s *HandlerService) ensureCurrencies(ctx context.Context, st *converter.State) error {
	if st.ListPhase() == converter.Succeeded {
		return nil
	}
	return s.converter.LoadCurrencies(ctx, st)
}

func (s *HandlerService) handleStart(ctx context.Context, _ string, st *converter.State) (string, error) {
	greeting := s.catalog.Text(locale.Hello) + "\n\n" + s.catalog.Text(locale.Usage)
	if err := s.ensureCurrencies(ctx, st); err != nil {
		return greeting + "\n\n" + s.catalog.Error(err), err
	}
	return greeting, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ *converter.State) (string, error) {
	return s.catalog.Text(locale.Usage), nil
}

func (s *HandlerService) handleCurrencies(ctx context.Context, _ string, st *converter.State) (string, error) {
	if err := s.ensureCurrencies(ctx, st); err != nil {
		return s.catalog.Error(err), err
	}
	if len(st.Currencies()) == 0 {
		return s.catalog.Text(locale.NoCurrencies), nil
	}
	return st.Currencies().String(), nil
}

func (s *HandlerService) handleFrom(ctx context.Context, arg string, st *converter.State) (string, error) {
	return s.selectCurrency(ctx, arg, st, st.SelectFrom)
}

func (s *HandlerService) handleTo(ctx context.Context, arg string, st *converter.State) (string, error) {
	return s.selectCurrency(ctx, arg, st, st.SelectTo)
}

func (s *HandlerService) selectCurrency(ctx context.Context, arg string, st *converter.State, sel func(string)) (string, error) {
	code := currency.Normalize(arg)
	if code == "" || strings.ContainsRune(code, ' ') {
		return s.catalog.Text(locale.Usage), nil
	}

	// an unavailable list must not block selection; the API has the final say
	if err := s.ensureCurrencies(ctx, st); err != nil {
		logger.Warn("selecting currency without a list", zap.String("code", code), zap.Error(err))
	}
	if known := st.Currencies(); len(known) > 0 && !known.Contains(code) {
		return s.catalog.Text(locale.UnknownCurrency) + ": " + code, nil
	}

	sel(code)
	return s.catalog.Text(locale.Selected) + ": " + formatSelection(st), nil
}

func (s *HandlerService) handleConvert(ctx context.Context, arg string, st *converter.State) (string, error) {
	if arg != "" {
		st.SetAmount(arg)
	}
	_ = s.ensureCurrencies(ctx, st)

	err := s.converter.Convert(ctx, st)
	switch {
	case converter.IsValidationError(err):
		return s.catalog.Error(err), nil
	case err != nil:
		return s.catalog.Error(err), err
	}

	shown, ok := st.Display()
	if !ok {
		return s.catalog.Text(locale.NothingToShow), nil
	}
	return formatResult(st, shown), nil
}

// handleAmount treats plain text as a new amount and recalculates locally.
func (s *HandlerService) handleAmount(_ context.Context, arg string, st *converter.State) (string, error) {
	if _, err := strconv.ParseFloat(strings.TrimSpace(arg), 64); err != nil {
		return s.catalog.Text(locale.Usage), nil
	}
	if _, err := converter.ParseAmount(arg); err != nil {
		return s.catalog.Error(err), nil
	}
	st.SetAmount(arg)

	shown, ok := st.Display()
	if !ok {
		return s.catalog.Text(locale.NothingToShow), nil
	}
	return formatResult(st, shown), nil
}

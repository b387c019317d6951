package converter

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/logger"
)

//go:generate minimock -i ratesProvider -o ./mock/ -s "_mock.go"

type ratesProvider interface {
	Currencies(ctx context.Context) (currency.Codes, error)
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// Service runs converter states against a rates provider.
type Service struct {
	provider ratesProvider
}

func NewService(provider ratesProvider) *Service {
	return &Service{provider: provider}
}

// FetchCurrencies performs the currency-list call without touching any
// state. Views that apply results asynchronously use it directly.
func (s *Service) FetchCurrencies(ctx context.Context) (currency.Codes, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchCurrencies")
	defer span.Finish()

	codes, err := s.provider.Currencies(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot get currencies", zap.Error(err))
		return nil, errors.Wrap(err, "fetch currencies")
	}
	logger.Info("currencies loaded", zap.Int("count", len(codes)))
	return codes, nil
}

// FetchConversion performs the conversion call for req.
func (s *Service) FetchConversion(ctx context.Context, req Request) (float64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchConversion")
	defer span.Finish()
	span.SetTag("from", req.From)
	span.SetTag("to", req.To)

	converted, err := s.provider.Convert(ctx, req.Amount, req.From, req.To)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot convert",
			zap.Error(err),
			zap.Float64("amount", req.Amount),
			zap.String("from", req.From),
			zap.String("to", req.To),
		)
		return 0, errors.Wrap(err, "fetch conversion")
	}
	return converted, nil
}

// LoadCurrencies runs the startup fetch for st.
func (s *Service) LoadCurrencies(ctx context.Context, st *State) error {
	if !st.BeginCurrencies() {
		return ErrBusy
	}
	codes, err := s.FetchCurrencies(ctx)
	st.FinishCurrencies(codes, err)
	return err
}

// Convert runs one conversion attempt for st. Invalid input returns a
// ValidationError without calling the provider.
func (s *Service) Convert(ctx context.Context, st *State) error {
	req, err := st.BeginConvert()
	if err != nil {
		if IsValidationError(err) {
			observeConversion(outcomeInvalid)
		}
		return err
	}

	converted, err := s.FetchConversion(ctx, req)
	if !st.FinishConvert(req, converted, err) {
		observeConversion(outcomeStale)
		return nil
	}
	if err != nil {
		observeConversion(outcomeFailed)
		return err
	}

	observeConversion(outcomeOK)
	logger.Info("converted",
		zap.Float64("amount", req.Amount),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Float64("result", converted),
	)
	return nil
}

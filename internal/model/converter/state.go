package converter

import (
	"max.ks1230/fx-converter/internal/entity/currency"
)

// Phase is the idle → loading → (succeeded | failed) cycle. The currency
// list fetch and every conversion attempt run through it independently.
type Phase int

const (
	Idle Phase = iota
	Loading
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Request is one conversion attempt handed to the rates provider.
type Request struct {
	ID     uint64  `validate:"-"`
	Amount float64 `validate:"gt=0"`
	From   string  `validate:"required,len=3,alpha,uppercase"`
	To     string  `validate:"required,len=3,alpha,uppercase"`

	epoch uint64
}

// State holds everything one converter view owns. All mutation goes
// through its methods; responses that arrive for a superseded selection
// or after Close are dropped.
type State struct {
	currencies currency.Codes
	from       string
	to         string
	amount     string

	list       Phase
	conversion Phase
	err        error

	rate   *float64
	result *float64

	attempt uint64
	pending uint64
	epoch   uint64
	closed  bool
}

func New(from, to, amount string) *State {
	return &State{
		from:   currency.Normalize(from),
		to:     currency.Normalize(to),
		amount: amount,
	}
}

func (s *State) Currencies() currency.Codes { return s.currencies }
func (s *State) From() string               { return s.from }
func (s *State) To() string                 { return s.to }
func (s *State) Amount() string             { return s.amount }
func (s *State) ListPhase() Phase           { return s.list }
func (s *State) ConversionPhase() Phase     { return s.conversion }
func (s *State) Err() error                 { return s.err }
func (s *State) Closed() bool               { return s.closed }

// Busy reports whether any fetch is in flight. While busy the convert
// action is unavailable.
func (s *State) Busy() bool {
	return s.list == Loading || s.conversion == Loading
}

// Ready reports whether the initial currency fetch has settled.
func (s *State) Ready() bool {
	return s.list == Succeeded || s.list == Failed
}

func (s *State) CanConvert() bool {
	return !s.closed && s.Ready() && !s.Busy()
}

func (s *State) Rate() (float64, bool) {
	if s.rate == nil {
		return 0, false
	}
	return *s.rate, true
}

func (s *State) Result() (float64, bool) {
	if s.result == nil {
		return 0, false
	}
	return *s.result, true
}

func (s *State) Display() (string, bool) {
	return Display(s.amount, s.rate, s.result)
}

// BeginCurrencies moves the list fetch into loading. It returns false when
// the fetch is already running or the state is closed.
func (s *State) BeginCurrencies() bool {
	if s.closed || s.list == Loading {
		return false
	}
	s.list = Loading
	s.err = nil
	return true
}

func (s *State) FinishCurrencies(codes currency.Codes, err error) bool {
	if s.closed || s.list != Loading {
		return false
	}
	if err != nil {
		s.list = Failed
		s.currencies = nil
		s.err = err
		return true
	}
	s.list = Succeeded
	s.currencies = currency.NewCodes(codes...)
	return true
}

func (s *State) SetAmount(text string) {
	s.amount = text
}

func (s *State) SelectFrom(code string) {
	code = currency.Normalize(code)
	if code == s.from {
		return
	}
	s.from = code
	s.invalidate()
}

func (s *State) SelectTo(code string) {
	code = currency.Normalize(code)
	if code == s.to {
		return
	}
	s.to = code
	s.invalidate()
}

func (s *State) invalidate() {
	s.rate = nil
	s.result = nil
	s.epoch++
}

// BeginConvert validates the current input and, when it is acceptable,
// moves the conversion into loading and returns the request to send.
// A validation failure is recorded as the current error and no request
// is produced.
func (s *State) BeginConvert() (Request, error) {
	switch {
	case s.closed:
		return Request{}, ErrClosed
	case !s.Ready():
		return Request{}, ErrNotReady
	case s.Busy():
		return Request{}, ErrBusy
	}

	amount, err := ParseAmount(s.amount)
	if err != nil {
		s.err = err
		return Request{}, err
	}

	req := Request{
		Amount: amount,
		From:   s.from,
		To:     s.to,
		epoch:  s.epoch,
	}
	if err = validateRequest(req); err != nil {
		s.err = err
		return Request{}, err
	}

	s.attempt++
	req.ID = s.attempt
	s.pending = req.ID
	s.conversion = Loading
	s.err = nil
	return req, nil
}

// FinishConvert applies the outcome of req. The loading flag is cleared
// for the in-flight attempt in every case; the outcome itself is only
// applied while the selection that produced req is still current.
func (s *State) FinishConvert(req Request, converted float64, err error) bool {
	if s.closed || req.ID == 0 || req.ID != s.pending {
		return false
	}
	s.pending = 0

	if req.epoch != s.epoch {
		s.conversion = Idle
		return false
	}

	if err != nil {
		s.conversion = Failed
		s.err = err
		return true
	}

	rate := converted / req.Amount
	s.result = &converted
	s.rate = &rate
	s.conversion = Succeeded
	s.err = nil
	return true
}

// Close marks the view as torn down; late responses become no-ops.
func (s *State) Close() {
	s.closed = true
}

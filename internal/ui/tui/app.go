package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"max.ks1230/fx-converter/internal/locale"
	"max.ks1230/fx-converter/internal/model/converter"
)

type focus int

const (
	focusAmount focus = iota
	focusFrom
	focusTo
	focusConvert

	focusCount
)

type model struct {
	theme Theme
	deps  Deps
	text  locale.Catalog

	ctx    context.Context
	cancel context.CancelFunc

	state   *converter.State
	amount  textinput.Model
	spinner spinner.Model
	focus   focus
}

// Run shows the converter until the user quits or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(ctx, deps)
	defer m.shutdown()

	p := tea.NewProgram(wrapSafe(m), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return errors.Wrap(err, "run terminal view")
}

func newModel(ctx context.Context, deps Deps) model {
	ctx, cancel := context.WithCancel(ctx)

	in := textinput.New()
	in.Placeholder = deps.Catalog.Text(locale.AmountPlaceholder)
	in.CharLimit = 32
	in.Width = 20
	in.SetValue(deps.Amount)
	in.Focus()

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		text:    deps.Catalog,
		ctx:     ctx,
		cancel:  cancel,
		state:   converter.New(deps.From, deps.To, deps.Amount),
		amount:  in,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:   focusAmount,
	}
}

// shutdown tears the view down. Responses still in flight are dropped.
func (m model) shutdown() {
	m.state.Close()
	m.cancel()
}

func (m model) Init() tea.Cmd {
	if !m.state.BeginCurrencies() {
		return textinput.Blink
	}
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		cmdLoadCurrencies(m.ctx, m.deps.Converter),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Closed() {
		return m, nil
	}

	switch msg := msg.(type) {
	case currenciesLoadedMsg:
		m.state.FinishCurrencies(msg.codes, msg.err)
		return m, nil

	case convertedMsg:
		applied := m.state.FinishConvert(msg.req, msg.value, msg.err)
		converter.ObserveConversion(applied, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		m.shutdown()
		return m, tea.Quit
	case "q":
		if m.focus != focusAmount {
			m.shutdown()
			return m, tea.Quit
		}
	}

	// every control stays disabled until the currency list settles
	if !m.state.Ready() {
		return m, nil
	}

	if key == "ctrl+r" && m.state.ListPhase() == converter.Failed {
		return m.retryCurrencies()
	}

	switch key {
	case "tab":
		return m.setFocus(m.focus + 1)
	case "shift+tab":
		return m.setFocus(m.focus + focusCount - 1)
	case "enter":
		return m.convert()
	}

	switch m.focus {
	case focusAmount:
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		m.state.SetAmount(m.amount.Value())
		return m, cmd
	case focusFrom, focusTo:
		if delta := stepFor(key); delta != 0 {
			m.step(delta)
		}
	}
	return m, nil
}

func (m model) retryCurrencies() (tea.Model, tea.Cmd) {
	if !m.state.BeginCurrencies() {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, cmdLoadCurrencies(m.ctx, m.deps.Converter))
}

func stepFor(key string) int {
	switch key {
	case "right", "l", "down", "j":
		return 1
	case "left", "h", "up", "k":
		return -1
	}
	return 0
}

func (m model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f % focusCount
	if m.focus == focusAmount {
		return m, m.amount.Focus()
	}
	m.amount.Blur()
	return m, nil
}

func (m model) step(delta int) {
	codes := m.state.Currencies()
	if len(codes) == 0 {
		return
	}
	if m.focus == focusFrom {
		m.state.SelectFrom(codes.Step(m.state.From(), delta))
		return
	}
	m.state.SelectTo(codes.Step(m.state.To(), delta))
}

func (m model) convert() (tea.Model, tea.Cmd) {
	req, err := m.state.BeginConvert()
	if err != nil {
		if converter.IsValidationError(err) {
			converter.ObserveConversion(true, err)
		}
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, cmdConvert(m.ctx, m.deps.Converter, req))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.text.Text(locale.Title)))
	b.WriteString("\n\n")

	if !m.state.Ready() {
		b.WriteString(m.spinner.View() + " " + m.text.Text(locale.LoadingCurrencies))
		return lipgloss.NewStyle().Padding(1, 2).Render(m.theme.Card.Render(b.String()))
	}

	if err := m.state.Err(); err != nil {
		b.WriteString(m.theme.Error.Render(m.text.Error(err)))
		if m.state.ListPhase() == converter.Failed {
			b.WriteString("\n")
			b.WriteString(m.theme.Help.Render(m.text.Text(locale.RetryHint)))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.amount.View())
	b.WriteString("\n\n")
	b.WriteString(m.field(focusFrom, m.state.From()))
	b.WriteString(" → ")
	b.WriteString(m.field(focusTo, m.state.To()))
	b.WriteString("\n\n")
	b.WriteString(m.button())

	if shown, ok := m.state.Display(); ok {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s %s = %s %s",
			strings.TrimSpace(m.state.Amount()), m.state.From(),
			m.theme.Result.Render(shown), m.state.To(),
		))
		if rate, ok := m.state.Rate(); ok {
			b.WriteString("\n")
			b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("1 %s = %s %s (%s)",
				m.state.From(), converter.FormatRate(rate), m.state.To(), m.text.Text(locale.PerUnit),
			)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.text.Text(locale.Help)))

	return lipgloss.NewStyle().Padding(1, 2).Render(m.theme.Card.Render(b.String()))
}

func (m model) field(f focus, value string) string {
	if value == "" {
		value = "---"
	}
	if m.focus == f {
		return m.theme.Focused.Render(value)
	}
	return m.theme.Blurred.Render(value)
}

func (m model) button() string {
	switch {
	case m.state.ConversionPhase() == converter.Loading:
		return m.spinner.View() + " " + m.text.Text(locale.Converting)
	case !m.state.CanConvert():
		return m.theme.Disabled.Render(m.text.Text(locale.Convert))
	}
	return m.field(focusConvert, m.text.Text(locale.Convert))
}

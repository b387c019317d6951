package tui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/logger"
)

const panicText = "Unexpected error (see logs)"

type safeModel struct {
	m model
}

func wrapSafe(m model) safeModel {
	return safeModel{m: m}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered",
				zap.String("where", "tui.update"),
				zap.String("panic", fmt.Sprint(r)),
				zap.String("stack", string(debug.Stack())),
			)
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered",
				zap.String("where", "tui.view"),
				zap.String("panic", fmt.Sprint(r)),
				zap.String("stack", string(debug.Stack())),
			)
			out = panicText
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)

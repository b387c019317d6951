package messages

import (
	"fmt"
	"strings"

	"max.ks1230/fx-converter/internal/model/converter"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(split[0], "/") {
		return stripBotName(split[0]), strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return stripBotName(text), ""
	}
	return "", text
}

// stripBotName turns "/convert@fx_bot" into "/convert".
func stripBotName(cmd string) string {
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		return cmd[:i]
	}
	return cmd
}

func formatSelection(st *converter.State) string {
	return fmt.Sprintf("%s → %s", st.From(), st.To())
}

func formatResult(st *converter.State, shown string) string {
	res := fmt.Sprintf("%s %s = %s %s", strings.TrimSpace(st.Amount()), st.From(), shown, st.To())
	if rate, ok := st.Rate(); ok {
		res += fmt.Sprintf("\n1 %s = %s %s", st.From(), converter.FormatRate(rate), st.To())
	}
	return res
}

package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCommand(t *testing.T) {
	cases := []struct {
		text, cmd, arg string
	}{
		{"/start", "/start", ""},
		{"  /convert 10  ", "/convert", "10"},
		{"/convert@fx_bot 10", "/convert", "10"},
		{"/from usd", "/from", "usd"},
		{"12.5", "", "12.5"},
		{"hello there", "", "hello there"},
	}
	for _, c := range cases {
		cmd, arg := parseCommand(c.text)
		assert.Equal(t, c.cmd, cmd, c.text)
		assert.Equal(t, c.arg, arg, c.text)
	}
}

func Test_CommandLabel(t *testing.T) {
	cases := map[string]string{
		"/convert 10":      "convert",
		"/from@fx_bot usd": "from",
		"/stop":            "stop",
		"20":               "amount",
		"hello there":      "amount",
		"/whatever":        "unknown",
	}
	for text, want := range cases {
		assert.Equal(t, want, commandLabel(text), text)
	}
}

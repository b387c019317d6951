package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func Test_ParseAmount(t *testing.T) {
	cases := []struct {
		text  string
		want  float64
		valid bool
	}{
		{"10", 10, true},
		{" 2.5 ", 2.5, true},
		{"1e3", 1000, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"10abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.text)
		if c.valid {
			assert.NoError(t, err, c.text)
			assert.Equal(t, c.want, got, c.text)
			continue
		}
		assert.True(t, IsValidationError(err), c.text)
	}
}

func Test_Display_ShouldPreferCachedRate(t *testing.T) {
	shown, ok := Display("20", ptr(56), ptr(560))
	assert.True(t, ok)
	assert.Equal(t, "1120.0000", shown)
}

func Test_Display_ShouldFallBackToLastResult(t *testing.T) {
	shown, ok := Display("10", nil, ptr(560))
	assert.True(t, ok)
	assert.Equal(t, "560", shown)
}

func Test_Display_ShouldShowNothingWithoutData(t *testing.T) {
	_, ok := Display("10", nil, nil)
	assert.False(t, ok)
}

func Test_Display_ShouldShowNothingForInvalidAmount(t *testing.T) {
	for _, text := range []string{"", "0", "-1", "x"} {
		_, ok := Display(text, ptr(56), ptr(560))
		assert.False(t, ok, text)
	}
}

func Test_Display_ShouldRoundToFourPlaces(t *testing.T) {
	cases := []struct {
		amount string
		rate   float64
		want   string
	}{
		{"1", 0.123456, "0.1235"},
		{"3", 0.33333, "1.0000"},
		{"2", 0.33333, "0.6667"},
		{"1.5", 1.00001, "1.5000"},
		{"100", 56.123456789, "5612.3457"},
		{"0.0001", 1, "0.0001"},
	}
	for _, c := range cases {
		shown, ok := Display(c.amount, ptr(c.rate), nil)
		assert.True(t, ok)
		assert.Equal(t, c.want, shown, "%s x %v", c.amount, c.rate)
	}
}

func Test_FormatRate(t *testing.T) {
	assert.Equal(t, "56", FormatRate(56))
	assert.Equal(t, "0.017857", FormatRate(1.0/56))
}

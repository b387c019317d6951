package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnRateTable_ShouldReturnSortedCodes(t *testing.T) {
	codes := FromRates(map[string]float64{"USD": 1, "PHP": 56})
	assert.Equal(t, Codes{"PHP", "USD"}, codes)
}

func Test_OnDuplicatesAndCase_ShouldNormalize(t *testing.T) {
	codes := NewCodes("usd", "EUR", " USD ", "", "eur", "JPY")
	assert.Equal(t, Codes{"EUR", "JPY", "USD"}, codes)
}

func Test_Contains(t *testing.T) {
	codes := NewCodes("EUR", "USD")
	assert.True(t, codes.Contains("USD"))
	assert.False(t, codes.Contains("PHP"))
	assert.False(t, Codes{}.Contains("USD"))
}

func Test_Step_ShouldWrapAround(t *testing.T) {
	codes := NewCodes("EUR", "PHP", "USD")

	assert.Equal(t, "PHP", codes.Step("EUR", 1))
	assert.Equal(t, "EUR", codes.Step("USD", 1))
	assert.Equal(t, "USD", codes.Step("EUR", -1))
	assert.Equal(t, "EUR", codes.Step("XXX", 1))
	assert.Equal(t, "USD", codes.Step("XXX", -1))
	assert.Equal(t, "ABC", Codes{}.Step("ABC", 1))
}

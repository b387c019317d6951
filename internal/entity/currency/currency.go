package currency

import (
	"sort"
	"strings"
)

// Default pair of a fresh view.
const (
	USD = "USD"
	PHP = "PHP"
)

// Codes is a sorted, deduplicated list of currency codes.
type Codes []string

// FromRates builds the code list out of the keys of a rate table.
func FromRates(rates map[string]float64) Codes {
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	return NewCodes(keys...)
}

func NewCodes(raw ...string) Codes {
	seen := make(map[string]struct{}, len(raw))
	res := make(Codes, 0, len(raw))
	for _, c := range raw {
		c = Normalize(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		res = append(res, c)
	}
	sort.Strings(res)
	return res
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Codes) Contains(code string) bool {
	i := sort.SearchStrings(c, code)
	return i < len(c) && c[i] == code
}

func (c Codes) IndexOf(code string) int {
	i := sort.SearchStrings(c, code)
	if i < len(c) && c[i] == code {
		return i
	}
	return -1
}

// Step returns the code delta positions away from code, wrapping around.
// An unknown code steps from the start of the list.
func (c Codes) Step(code string, delta int) string {
	if len(c) == 0 {
		return code
	}
	i := c.IndexOf(code)
	if i < 0 {
		if delta > 0 {
			return c[0]
		}
		return c[len(c)-1]
	}
	n := len(c)
	return c[((i+delta)%n+n)%n]
}

func (c Codes) String() string {
	return strings.Join(c, ", ")
}

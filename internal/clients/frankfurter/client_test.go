package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/fx-converter/internal/entity/currency"
)

type testConfig struct {
	url     string
	timeout time.Duration
}

func (c testConfig) BaseURL() string        { return c.url }
func (c testConfig) Timeout() time.Duration { return c.timeout }

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	c, err := New(testConfig{url: server.URL + "/", timeout: time.Second})
	require.NoError(t, err)
	return c
}

func Test_OnLatest_ShouldReturnSortedCurrencies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","date":"2024-05-10","rates":{"USD":1,"PHP":56}}`))
	})

	codes, err := c.Currencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, currency.Codes{"EUR", "PHP", "USD"}, codes)
}

func Test_OnLatestWithoutBase_ShouldUseRateKeysOnly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"USD":1,"PHP":56}}`))
	})

	codes, err := c.Currencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, currency.Codes{"PHP", "USD"}, codes)
}

func Test_OnCustomHTTPClient_ShouldUseIt(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","rates":{"USD":1.08}}`))
	}))
	defer server.Close()
	cfg := testConfig{url: server.URL + "/", timeout: time.Second}

	plain, err := New(cfg)
	require.NoError(t, err)
	_, err = plain.Latest(context.Background())
	assert.True(t, IsNetworkError(err))

	trusting, err := New(cfg, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	table, err := trusting.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.08, table.Rates["USD"])
}

func Test_OnLatest_ShouldKeepBaseAndDate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","date":"2024-05-10","rates":{"USD":1.08}}`))
	})

	table, err := c.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EUR", table.Base)
	assert.Equal(t, "2024-05-10", table.Date)
	assert.Equal(t, 1.08, table.Rates["USD"])
}

func Test_OnConvert_ShouldSendParamsAndReadTarget(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("amount"))
		assert.Equal(t, "USD", q.Get("from"))
		assert.Equal(t, "PHP", q.Get("to"))
		_, _ = w.Write([]byte(`{"amount":10.0,"base":"USD","date":"2024-05-10","rates":{"PHP":560}}`))
	})

	converted, err := c.Convert(context.Background(), 10, "USD", "PHP")
	require.NoError(t, err)
	assert.Equal(t, 560.0, converted)
}

func Test_OnFractionalAmount_ShouldNotPadQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2.5", r.URL.Query().Get("amount"))
		_, _ = w.Write([]byte(`{"rates":{"EUR":2.3}}`))
	})

	_, err := c.Convert(context.Background(), 2.5, "USD", "EUR")
	assert.NoError(t, err)
}

func Test_OnNonSuccessStatus_ShouldReturnNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Latest(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusServiceUnavailable, ne.Status)
}

func Test_OnMissingTargetRate_ShouldReturnNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"EUR":1}}`))
	})

	_, err := c.Convert(context.Background(), 1, "USD", "PHP")
	assert.True(t, IsNetworkError(err))
}

func Test_OnGarbageBody_ShouldReturnNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := c.Latest(context.Background())
	assert.True(t, IsNetworkError(err))
}

func Test_OnTransportFailure_ShouldReturnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := New(testConfig{url: url, timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Latest(context.Background())
	require.Error(t, err)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Zero(t, ne.Status)
}

func Test_OnRelativeBaseURL_ShouldFail(t *testing.T) {
	_, err := New(testConfig{url: "api.frankfurter.app"})
	assert.Error(t, err)
}

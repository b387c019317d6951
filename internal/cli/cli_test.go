package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratesServer struct {
	*httptest.Server
	conversions atomic.Int32
}

func newRatesServer(t *testing.T) *ratesServer {
	t.Helper()
	rs := &ratesServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("to") == "" {
			fmt.Fprint(w, `{"amount":1,"base":"EUR","date":"2024-05-03","rates":{"USD":1,"PHP":56}}`)
			return
		}
		rs.conversions.Add(1)
		fmt.Fprintf(w, `{"amount":%s,"base":%q,"date":"2024-05-03","rates":{%q:560}}`,
			q.Get("amount"), q.Get("from"), q.Get("to"))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func execute(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FX_API_URL", apiURL)
	t.Setenv("LOG_FILE", "")

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func Test_OnCurrencies_ShouldPrintSortedCodes(t *testing.T) {
	srv := newRatesServer(t)

	out, err := execute(t, srv.URL+"/", "currencies")

	require.NoError(t, err)
	assert.Equal(t, "EUR\nPHP\nUSD\n", out)
}

func Test_OnConvertFromBaseCurrency_ShouldAccept(t *testing.T) {
	srv := newRatesServer(t)

	out, err := execute(t, srv.URL+"/", "convert", "10", "EUR", "PHP")

	require.NoError(t, err)
	assert.Equal(t, "10 EUR = 560.0000 PHP\n1 EUR = 56 PHP\n", out)
}

func Test_OnConvert_ShouldPrintResultAndRate(t *testing.T) {
	srv := newRatesServer(t)

	out, err := execute(t, srv.URL+"/", "convert", "10", "usd", "PHP")

	require.NoError(t, err)
	assert.Equal(t, "10 USD = 560.0000 PHP\n1 USD = 56 PHP\n", out)
	assert.Equal(t, int32(1), srv.conversions.Load())
}

func Test_OnConvertInvalidAmount_ShouldNotCallApi(t *testing.T) {
	srv := newRatesServer(t)

	_, err := execute(t, srv.URL+"/", "convert", "0", "USD", "PHP")

	require.Error(t, err)
	assert.Equal(t, "Enter an amount greater than 0", err.Error())
	assert.Equal(t, int32(0), srv.conversions.Load())
}

func Test_OnConvertWithRussianLocale_ShouldLocalizeError(t *testing.T) {
	srv := newRatesServer(t)

	_, err := execute(t, srv.URL+"/", "--locale", "ru", "convert", "abc", "USD", "PHP")

	require.Error(t, err)
	assert.Equal(t, "Введите сумму больше 0", err.Error())
}

func Test_OnConvertUnknownCurrency_ShouldFail(t *testing.T) {
	srv := newRatesServer(t)

	_, err := execute(t, srv.URL+"/", "convert", "10", "USD", "XYZ")

	require.Error(t, err)
	assert.Equal(t, "Error: Unknown currency: XYZ", err.Error())
	assert.Equal(t, int32(0), srv.conversions.Load())
}

func Test_OnApiFailure_ShouldReportNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := execute(t, srv.URL+"/", "currencies")

	require.Error(t, err)
	assert.Equal(t, "Error: the network response was not ok", err.Error())
}

func Test_OnConvertWrongArgs_ShouldFail(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1/", "convert", "10")

	assert.Error(t, err)
}

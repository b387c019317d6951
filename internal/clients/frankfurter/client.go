package frankfurter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/entity/currency"
	"max.ks1230/fx-converter/internal/logger"
)

const (
	latestPath  = "latest"
	amountParam = "amount"
	fromParam   = "from"
	toParam     = "to"

	opLatest  = "latest"
	opConvert = "convert"

	maxBodyBytes = 1 << 20
)

type config interface {
	BaseURL() string
	Timeout() time.Duration
}

type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default http client, e.g. one trusting a
// private CA or going through a proxy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Table is the rate table returned by a plain /latest call.
type Table struct {
	Base  string
	Date  string
	Rates map[string]float64
}

type ratesResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

func New(cfg config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", cfg.BaseURL())
	}

	c := &Client{
		base:    base,
		http:    &http.Client{},
		timeout: cfg.Timeout(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Latest fetches the current rate table against the API's base currency.
func (c *Client) Latest(ctx context.Context) (Table, error) {
	res, err := c.get(ctx, opLatest, nil)
	if err != nil {
		return Table{}, err
	}
	return Table{Base: res.Base, Date: res.Date, Rates: res.Rates}, nil
}

// Currencies returns the sorted set of codes known to the API: the keys of
// the rate table plus its base, which the table never lists.
func (c *Client) Currencies(ctx context.Context) (currency.Codes, error) {
	table, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	codes := currency.FromRates(table.Rates)
	if table.Base != "" {
		codes = currency.NewCodes(append(codes, table.Base)...)
	}
	return codes, nil
}

// Convert asks the API to convert amount from one currency into another
// and returns the converted value.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	q := url.Values{}
	q.Set(amountParam, strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set(fromParam, from)
	q.Set(toParam, to)

	res, err := c.get(ctx, opConvert, q)
	if err != nil {
		return 0, err
	}

	converted, ok := res.Rates[to]
	if !ok {
		return 0, &NetworkError{Op: opConvert, Err: errors.Errorf("no rate for %s in response", to)}
	}
	return converted, nil
}

func (c *Client) get(ctx context.Context, op string, query url.Values) (*ratesResponse, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "frankfurter."+op)
	defer span.Finish()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.base.ResolveReference(&url.URL{Path: latestPath})
	endpoint.RawQuery = query.Encode()
	span.SetTag("http.url", endpoint.String())

	start := time.Now()
	res, status, err := c.do(ctx, op, endpoint.String())
	observeRequest(op, status, time.Since(start))

	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("rates request failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	span.SetTag("http.status_code", status)
	return res, nil
}

func (c *Client) do(ctx context.Context, op, endpoint string) (*ratesResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, &NetworkError{Op: op, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Op: op, Status: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}
	logger.Debug("new response from frankfurter",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &NetworkError{Op: op, Status: resp.StatusCode}
	}

	rates := ratesResponse{}
	err = json.Unmarshal(body, &rates)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Op: op, Status: resp.StatusCode, Err: errors.Wrap(err, "unmarshalling response")}
	}
	if rates.Rates == nil {
		return nil, resp.StatusCode, &NetworkError{Op: op, Status: resp.StatusCode, Err: errors.New("response has no rates")}
	}
	return &rates, resp.StatusCode, nil
}

package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tripboard/tripboard/src/common/types"
	"go.uber.org/zap"
)

const maxRetries = 3

// Client issues requests against the external transit schedule API.
type Client struct {
	mu         sync.Mutex
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.SugaredLogger
}

func NewClient(baseURL string, apiKey string, logger *zap.SugaredLogger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger,
	}
}

func NewClientFromEnv(logger *zap.SugaredLogger) *Client {
	return NewClient(os.Getenv("SCHEDULE_API_URL"), os.Getenv("SCHEDULE_API_KEY"), logger)
}

// SearchRequest describes one schedule-between-stations query.
type SearchRequest struct {
	From           string
	To             string
	Date           string // YYYY-MM-DD
	TransportTypes []string
	Limit          int
}

// SearchSchedule returns the raw segment list for the given station pair.
// Segments come back exactly as the upstream reports them; transport-type
// narrowing here is a request-size optimization, not a guarantee.
func (c *Client) SearchSchedule(ctx context.Context, req SearchRequest) ([]types.RawSegment, error) {
	if req.From == "" || req.To == "" {
		return nil, fmt.Errorf("%w: both station codes are required", ErrBadRequest)
	}

	params := url.Values{}
	params.Set("from", req.From)
	params.Set("to", req.To)
	if req.Date != "" {
		params.Set("date", req.Date)
	}
	if len(req.TransportTypes) > 0 {
		params.Set("transport_types", strings.Join(req.TransportTypes, ","))
	}
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}

	body, err := c.get(ctx, "/v3.0/search/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response types.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}

	return response.Segments, nil
}

// FetchCarrier returns the extended contact record for a carrier code.
func (c *Client) FetchCarrier(ctx context.Context, code string) (*types.CarrierDetails, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: carrier code is required", ErrBadRequest)
	}

	params := url.Values{}
	params.Set("code", code)

	body, err := c.get(ctx, "/v3.0/carrier/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response types.CarrierDetailsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}

	if len(response.Carriers) == 0 {
		return nil, ErrNotFound
	}
	return &response.Carriers[0], nil
}

// FetchStationList downloads the full station catalog.
func (c *Client) FetchStationList(ctx context.Context) (*types.StationListResponse, error) {
	body, err := c.get(ctx, "/v3.0/stations_list/")
	if err != nil {
		return nil, err
	}

	var response types.StationListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}

	return &response, nil
}

// get performs one GET with retries on transient failures. The mutex keeps
// at most one request mutating client state at a time.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("x-apikey", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusBadGateway ||
			resp.StatusCode == http.StatusServiceUnavailable ||
			resp.StatusCode == http.StatusGatewayTimeout {
			return &ServerError{Code: resp.StatusCode}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(statusError(resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
		}
		body = data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warnw("schedule api request failed", "endpoint", endpoint, "error", err)
		return nil, err
	}

	return body, nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}

func statusError(code int) error {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500 && code < 600:
		return &ServerError{Code: code}
	default:
		return &UnknownStatusError{Code: code}
	}
}

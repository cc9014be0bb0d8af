package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls a test server and decodes 2xx bodies into dest and every
// other body into errDest. Exchanges are written to the test log.
type APIClient struct {
	tb         testing.TB
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(tb testing.TB, baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		tb:         tb,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

// Post encodes request as JSON. A nil request sends no body.
func (a APIClient) Post(ctx context.Context, endpoint string, headers http.Header, request, dest, errDest any) (*http.Response, error) {
	if request == nil {
		return a.Do(ctx, http.MethodPost, endpoint, headers, http.NoBody, dest, errDest)
	}

	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.Do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader(b), dest, errDest)
}

// PostJSON sends raw, which may be deliberately malformed.
func (a APIClient) PostJSON(ctx context.Context, endpoint string, headers http.Header, raw string, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodPost, endpoint, headers, bytes.NewBufferString(raw), dest, errDest)
}

func (a APIClient) Do(
	ctx context.Context,
	method string,
	endpoint string,
	headers http.Header,
	body io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	a.tb.Helper()

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if body != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	a.tb.Logf("request: %s %s", method, endpoint)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.tb.Logf("response: %s", dump)
	}

	target := errDest
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		target = dest
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("json.Decode(status %d): %w", resp.StatusCode, err)
		}
	}

	return resp, nil
}

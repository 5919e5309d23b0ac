package nucleus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

// Request is one fully resolved HTTP exchange
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    json.RawMessage
}

// Response is the raw provider answer
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs the HTTP call.
// Implementations return a *RemoteError for non-2xx answers and their own error for transport failures.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type fastshotTransport struct {
	baseURL string
	timeout time.Duration
}

// NewFastshotTransport returns the default transport.
// A fresh fast-shot client is built per call so concurrent calls share nothing mutable.
func NewFastshotTransport(baseURL string, timeout time.Duration) Transport {
	return &fastshotTransport{baseURL: baseURL, timeout: timeout}
}

func (t *fastshotTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	client := fastshot.NewClient(t.baseURL).
		Config().SetTimeout(t.timeout).
		Header().AddAll(req.Headers).
		Build()

	var res fastshot.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		res, err = client.GET(req.Path).
			Context().Set(ctx).
			Send()
	case http.MethodDelete:
		res, err = client.DELETE(req.Path).
			Context().Set(ctx).
			Send()
	case http.MethodPost:
		res, err = client.POST(req.Path).
			Context().Set(ctx).
			Body().AsJSON(req.Body).
			Send()
	case http.MethodPatch:
		res, err = client.PATCH(req.Path).
			Context().Set(ctx).
			Body().AsJSON(req.Body).
			Send()
	case http.MethodPut:
		res, err = client.PUT(req.Path).
			Context().Set(ctx).
			Body().AsJSON(req.Body).
			Send()
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", req.Method)
	}
	if err != nil {
		return nil, err
	}

	defer res.RawResponse.Body.Close()

	body, err := io.ReadAll(res.RawResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{
		StatusCode: res.StatusCode(),
		Body:       body,
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response, &RemoteError{StatusCode: response.StatusCode, Body: response.Body}
	}

	return response, nil
}

package nucleus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paycrest/nucleus-go/types"
	"github.com/paycrest/nucleus-go/utils/logger"
)

// buildCall resolves method, path, headers and body for op from the descriptor table
func (c *Client) buildCall(op Operation, req interface{}) (*Request, error) {
	desc, err := Lookup(op)
	if err != nil {
		return nil, err
	}

	routingValue, fields, err := splitPayload(op, desc, req)
	if err != nil {
		return nil, err
	}

	path, err := resolvePath(op, desc.PathTemplate, fields)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		headerAPIKey: c.conf.APIKey,
		"Accept":     "application/json",
	}
	for name, value := range routingHeaders(desc.Routing, routingValue) {
		headers[name] = value
	}

	call := &Request{
		Method:  desc.Method,
		Path:    path,
		Headers: headers,
	}

	if desc.HasBody() {
		body, err := json.Marshal(fields)
		if err != nil {
			return nil, programmingError(op, "encoding body: %v", err)
		}
		call.Body = body
		headers["Content-Type"] = "application/json"
	}

	return call, nil
}

// execute runs one service call. Failures are logged and returned exactly as the transport produced them.
func (c *Client) execute(op Operation, call *Request, serviceCall func() (*Response, error)) ([]byte, error) {
	callID := uuid.New().String()
	start := time.Now()

	res, err := serviceCall()
	elapsed := time.Since(start)

	fields := logger.Fields{
		"operation": string(op),
		"method":    call.Method,
		"path":      call.Path,
		"call_id":   callID,
		"duration":  elapsed.String(),
	}

	if err != nil {
		outcome := outcomeTransportError
		var remote *RemoteError
		if errors.As(err, &remote) {
			outcome = outcomeRemoteError
			fields["status"] = remote.StatusCode
		}
		c.metrics.observe(op, outcome, elapsed)

		logger.Errorf("nucleus %s failed: %s", fields, op, err.Error())
		return nil, err
	}

	c.metrics.observe(op, outcomeSuccess, elapsed)
	fields["status"] = res.StatusCode
	logger.Debugf("nucleus %s succeeded", fields, op)

	return res.Body, nil
}

// dispatch validates, builds and executes op, returning the raw response body
func (c *Client) dispatch(ctx context.Context, op Operation, req interface{}) ([]byte, error) {
	if err := types.ValidateRequest(req); err != nil {
		logger.Warnf("nucleus %s rejected before dispatch: %s", logger.Fields{"operation": string(op)}, op, err.Error())
		return nil, err
	}

	call, err := c.buildCall(op, req)
	if err != nil {
		logger.ErrorWithFields(err, logger.Fields{"operation": string(op)})
		return nil, err
	}

	return c.execute(op, call, func() (*Response, error) {
		return c.transport.Do(ctx, call)
	})
}

// invoke dispatches op and decodes the response body into T
func invoke[T any](ctx context.Context, c *Client, op Operation, req interface{}) (*T, error) {
	body, err := c.dispatch(ctx, op, req)
	if err != nil {
		return nil, err
	}

	var out T
	if err := decodeBody(body, &out); err != nil {
		logger.Errorf("nucleus %s: undecodable response: %v", logger.Fields{"operation": string(op)}, op, err)
		return nil, fmt.Errorf("nucleus %s: decoding response: %w", op, err)
	}
	return &out, nil
}

// decodeBody maps a response body onto out without interpreting it further.
// Plain-text answers are accepted for string results; raw results keep the bytes as sent.
func decodeBody(body []byte, out interface{}) error {
	switch target := out.(type) {
	case *json.RawMessage:
		if len(bytes.TrimSpace(body)) > 0 {
			*target = append(json.RawMessage(nil), body...)
		}
		return nil
	case *string:
		if err := json.Unmarshal(body, target); err != nil {
			*target = string(body)
		}
		return nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

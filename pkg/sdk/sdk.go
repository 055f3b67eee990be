package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/beanbocchi/ossclient/pkg/response"
)

// HeaderRequestID carries a fresh id on every attempt.
const HeaderRequestID = "X-Request-Id"

// BuildQuery converts params into query values, skipping nil values and
// nil pointers.
func BuildQuery(params map[string]any) url.Values {
	q := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer {
			if v.IsNil() {
				continue
			}
			value = v.Elem().Interface()
		}
		q.Set(key, fmt.Sprint(value))
	}
	return q
}

type request struct {
	route route
	path  string // overrides route.path when set
	query url.Values
	body  []byte
}

func (c *Client) get(ctx context.Context, cfg Config, rt route, query map[string]any, out any) error {
	return c.do(ctx, cfg, request{route: rt, query: BuildQuery(query)}, out)
}

func (c *Client) post(ctx context.Context, cfg Config, rt route, body any, query map[string]any, out any) error {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return &Error{Kind: KindInvalidInput, Message: "encode request body", Cause: err}
	}
	return c.do(ctx, cfg, request{route: rt, query: BuildQuery(query), body: payload}, out)
}

func (c *Client) snapshot() Config {
	return c.Config()
}

// do runs req through retry.
func (c *Client) do(ctx context.Context, cfg Config, req request, out any) error {
	path := req.route.path
	if req.path != "" {
		path = req.path
	}
	return c.retry(ctx, cfg, req.route.method, path, func() error {
		return c.attempt(ctx, cfg, req, path, out)
	}, nil)
}

// retry calls fn up to cfg.MaxRetries times, sleeping RetryDelay*attempt
// between attempts. The last failure is returned unchanged. A non-nil stop
// ends the loop early when it reports true for a failure.
func (c *Client) retry(ctx context.Context, cfg Config, method, path string, fn func() error, stop func(error) bool) error {
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		start := time.Now()
		lastErr = fn()
		if lastErr == nil {
			c.logger.DebugContext(ctx, "oss request done",
				"method", method,
				"path", path,
				"attempt", attempt,
				"took", time.Since(start),
			)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return &Error{Kind: KindNetwork, Message: "request canceled", Cause: err}
		}
		if attempt == cfg.MaxRetries || (stop != nil && stop(lastErr)) {
			break
		}

		delay := cfg.delay(attempt)
		c.logger.WarnContext(ctx, "oss request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"delay", delay,
			"error", lastErr,
		)
		if err := sleep(ctx, delay); err != nil {
			return &Error{Kind: KindNetwork, Message: "request canceled", Cause: err}
		}
	}

	return lastErr
}

func (c *Client) attempt(ctx context.Context, cfg Config, req request, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	r := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderRequestID, uuid.NewString())
	if len(req.query) > 0 {
		r.SetQueryParamsFromValues(req.query)
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	resp, err := r.Execute(req.route.method, cfg.BaseURL+path)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("%s %s", req.route.method, path), Cause: err}
	}

	body := bytes.TrimSpace(resp.Body())
	if !resp.IsSuccess() {
		return newHTTPError(resp.StatusCode(), body)
	}

	return decode(cfg.Profile, req.route.text, resp.StatusCode(), body, out)
}

// decode unwraps body into out according to the profile.
func decode(profile ProfileName, text bool, status int, body []byte, out any) error {
	if profile.enveloped() {
		var env response.Envelope[json.RawMessage]
		if err := sonic.Unmarshal(body, &env); err != nil {
			return newDecodeError(status, "decode envelope", err)
		}

		res := env.Result()
		if !res.OK {
			return newAPIError(status, int(env.Code.Int64), res.Message)
		}
		return decodeJSON(status, res.Data, out)
	}

	if text {
		if s, ok := out.(*string); ok {
			*s = string(body)
			return nil
		}
	}
	return decodeJSON(status, body, out)
}

func decodeJSON(status int, data []byte, out any) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return newDecodeError(status, "decode response", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

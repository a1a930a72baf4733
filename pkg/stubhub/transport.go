package stubhub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/stubhub/internal/metrics"
)

// Content types accepted by post.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

const (
	sandboxScopeKey   = "scope"
	sandboxScopeValue = "SANDBOX"
)

// request is one outbound call as assembled by the helpers below.
type request struct {
	method      string
	path        string
	query       url.Values
	contentType string
	body        io.Reader
	// basicFallback allows application credentials when no token is held.
	basicFallback bool
}

// response is the raw result of a 200 call.
type response struct {
	header http.Header
	body   []byte
}

// get performs a GET and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	resp, err := c.do(ctx, &request{
		method: http.MethodGet,
		path:   path,
		query:  c.withScopeQuery(query),
	})
	if err != nil {
		return err
	}
	return decode(resp.body, dst)
}

// post performs a POST with a JSON or form body. It is the only helper that
// falls back to Basic authentication when no token is held, which is what
// the login call relies on. The response headers are returned for callers
// that read values from them.
func (c *Client) post(
	ctx context.Context,
	path, contentType string,
	body, dst any,
) (http.Header, error) {
	reader, err := c.encodeBody(contentType, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, &request{
		method:        http.MethodPost,
		path:          path,
		contentType:   contentType,
		body:          reader,
		basicFallback: true,
	})
	if err != nil {
		return nil, err
	}
	return resp.header, decode(resp.body, dst)
}

// put performs a PUT with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, dst any) error {
	reader, err := c.encodeBody(ContentTypeJSON, body)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, &request{
		method:      http.MethodPut,
		path:        path,
		contentType: ContentTypeJSON,
		body:        reader,
	})
	if err != nil {
		return err
	}
	return decode(resp.body, dst)
}

// del performs a DELETE and decodes the response into dst.
func (c *Client) del(ctx context.Context, path string, dst any) error {
	resp, err := c.do(ctx, &request{
		method: http.MethodDelete,
		path:   path,
		query:  c.withScopeQuery(nil),
	})
	if err != nil {
		return err
	}
	return decode(resp.body, dst)
}

// postMultipart performs a multipart/form-data POST. build writes the parts;
// the sandbox scope field is appended after them.
func (c *Client) postMultipart(
	ctx context.Context,
	path string,
	query url.Values,
	build func(*multipart.Writer) error,
	dst any,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := build(mw); err != nil {
		return fmt.Errorf("building multipart body: %w", err)
	}
	if c.Sandbox() {
		if err := mw.WriteField(sandboxScopeKey, sandboxScopeValue); err != nil {
			return fmt.Errorf("building multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("building multipart body: %w", err)
	}

	resp, err := c.do(ctx, &request{
		method:      http.MethodPost,
		path:        path,
		query:       query,
		contentType: mw.FormDataContentType(),
		body:        &buf,
	})
	if err != nil {
		return err
	}
	return decode(resp.body, dst)
}

func (c *Client) do(ctx context.Context, r *request) (*response, error) {
	authHeader, err := c.authorization(r.basicFallback)
	if err != nil {
		return nil, err
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.RateLimitHitsTotal.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.DailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", authHeader)
	httpReq.Header.Set("Accept", ContentTypeJSON)
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}

	endpoint := endpointLabel(r.path)
	start := c.nowFunc()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(r.method, endpoint, "error").Inc()
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	elapsed := c.nowFunc().Sub(start)
	metrics.APIRequestDuration.WithLabelValues(r.method, endpoint).Observe(elapsed.Seconds())
	metrics.APIRequestsTotal.WithLabelValues(r.method, endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	c.log.Debug("stubhub request",
		"method", r.method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", elapsed.Round(time.Millisecond),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &response{header: resp.Header, body: body}, nil
}

// authorization picks the Authorization header: the bearer token when one
// is held, application credentials when the call permits it, otherwise
// ErrNotAuthenticated.
func (c *Client) authorization(basicFallback bool) (string, error) {
	if token := c.Session().AccessToken; token != "" {
		return "Bearer " + token, nil
	}
	if basicFallback {
		creds := base64.StdEncoding.EncodeToString(
			[]byte(c.consumerKey + ":" + c.consumerSecret),
		)
		return "Basic " + creds, nil
	}
	return "", ErrNotAuthenticated
}

// encodeBody serializes body for the given content type and merges the
// sandbox scope when enabled. Form bodies must be url.Values.
func (c *Client) encodeBody(contentType string, body any) (io.Reader, error) {
	switch contentType {
	case ContentTypeForm:
		form, ok := body.(url.Values)
		if !ok {
			return nil, fmt.Errorf("form body must be url.Values, got %T", body)
		}
		if c.Sandbox() {
			merged := url.Values{}
			for k, v := range form {
				merged[k] = v
			}
			merged.Set(sandboxScopeKey, sandboxScopeValue)
			form = merged
		}
		return strings.NewReader(form.Encode()), nil

	case ContentTypeJSON:
		if body == nil {
			return http.NoBody, nil
		}
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		if c.Sandbox() {
			if data, err = mergeScope(data); err != nil {
				return nil, err
			}
		}
		return bytes.NewReader(data), nil

	default:
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
}

func (c *Client) withScopeQuery(q url.Values) url.Values {
	if !c.Sandbox() {
		return q
	}
	merged := url.Values{}
	for k, v := range q {
		merged[k] = v
	}
	merged.Set(sandboxScopeKey, sandboxScopeValue)
	return merged
}

// mergeScope adds the sandbox scope to a top-level JSON object. Other JSON
// values are returned unchanged.
func mergeScope(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("merging sandbox scope: %w", err)
	}
	obj[sandboxScopeKey] = json.RawMessage(strconv.Quote(sandboxScopeValue))
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("merging sandbox scope: %w", err)
	}
	return out, nil
}

func decode(body []byte, dst any) error {
	if dst == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// endpointLabel collapses identifiers in a path so metric labels stay
// bounded: /inventory/listings/v1/123 becomes /inventory/listings/v1/:id.
func endpointLabel(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" || isVersionSegment(s) {
			continue
		}
		if strings.ContainsAny(s, "0123456789") {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}

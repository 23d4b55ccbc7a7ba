package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/socialharmony/backend/pkg/xcontext"
)

type Client interface {
	GET(ctx context.Context) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	domains []string
}

// NewGenerator returns a Generator whose clients try the domains in random order. Without any
// domain, the path passed to New must be an absolute URL.
func NewGenerator(domains ...string) *defaultGenerator {
	if len(domains) == 0 {
		domains = []string{""}
	}

	return &defaultGenerator{domains: domains}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	if len(args) > 0 {
		path = fmt.Sprintf(path, args...)
	}

	return &defaultClient{
		domains: g.domains,
		path:    path,
	}
}

type defaultClient struct {
	domains []string
	method  string
	path    string
}

func (c *defaultClient) GET(ctx context.Context) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx)
}

func (c *defaultClient) call(ctx context.Context) (*Response, error) {
	var lastErr error
	for _, index := range rand.Perm(len(c.domains)) {
		url := c.domains[index] + c.path

		req, err := http.NewRequestWithContext(ctx, c.method, url, nil)
		if err != nil {
			return nil, err
		}

		req.Header.Set("Accept", "application/json")

		result, err := xcontext.HTTPClient(ctx).Do(req)
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
			lastErr = err
			continue
		}

		body, err := io.ReadAll(result.Body)
		result.Body.Close()
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occured when reading body of %s: %v", url, err)
			lastErr = err
			continue
		}

		response := &Response{
			Code:    result.StatusCode,
			Header:  result.Header,
			RawBody: body,
		}

		if len(body) == 0 {
			response.Body = JSON{}
		} else if b, err := bytesToJSON(body); err == nil {
			response.Body = b
		} else if b, err := bytesToArray(body); err == nil {
			response.Body = b
		}

		if response.Body == nil {
			xcontext.Logger(ctx).Warnf("An error occured when parse body of %s", url)
			lastErr = fmt.Errorf("invalid json body from %s", url)
			continue
		}

		return response, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, errors.New("all endpoints got errors")
}

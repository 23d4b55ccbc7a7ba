package api

import (
	"context"
)

type MockAPIGenerator struct {
	NewFunc func(path string, args ...any) Client
}

func (m *MockAPIGenerator) New(path string, args ...any) Client {
	if m.NewFunc != nil {
		return m.NewFunc(path, args...)
	}

	panic("not implemented")
}

type MockAPIClient struct {
	GETFunc func(ctx context.Context) (*Response, error)
}

func (c *MockAPIClient) GET(ctx context.Context) (*Response, error) {
	if c.GETFunc != nil {
		return c.GETFunc(ctx)
	}

	panic("not implemented")
}

// MockJSONGenerator serves fixed JSON documents keyed by URL.
func MockJSONGenerator(documents map[string]JSON) *MockAPIGenerator {
	return &MockAPIGenerator{
		NewFunc: func(path string, args ...any) Client {
			return &MockAPIClient{
				GETFunc: func(ctx context.Context) (*Response, error) {
					doc, ok := documents[path]
					if !ok {
						return &Response{Code: 404, Body: JSON{}}, nil
					}

					return &Response{Code: 200, Body: doc}, nil
				},
			}
		},
	}
}

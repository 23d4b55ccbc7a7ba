package xcontext

import (
	"context"
	"net/http"
	"time"
)

type (
	httpRequestKey struct{}
	startTimeKey   struct{}
	responseKey    struct{}
	errorKey       struct{}
)

// Inherit copies the configs, logger, database and http client of src into dst. It is used to
// carry server scoped values into request scoped contexts.
func Inherit(dst, src context.Context) context.Context {
	for _, key := range []any{configsKey{}, loggerKey{}, dbKey{}, httpClientKey{}} {
		if value := src.Value(key); value != nil {
			dst = context.WithValue(dst, key, value)
		}
	}

	return dst
}

func WithHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, req)
}

func HTTPRequest(ctx context.Context) *http.Request {
	req, _ := ctx.Value(httpRequestKey{}).(*http.Request)
	return req
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	t, _ := ctx.Value(startTimeKey{}).(time.Time)
	return t
}

func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	err, _ := ctx.Value(errorKey{}).(error)
	return err
}

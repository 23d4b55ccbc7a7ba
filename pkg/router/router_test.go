package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `form:"name" json:"name"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Chain string `json:"chain"`
}

type envelope struct {
	Code  int64        `json:"code"`
	Error string       `json:"error"`
	Data  echoResponse `json:"data"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	switch req.Name {
	case "":
		return nil, errorx.New(errorx.BadRequest, "Empty name")
	case "fail":
		return nil, errors.New("internal detail")
	}

	return &echoResponse{Name: req.Name, Chain: xcontext.Configs(ctx).Chain.Name}, nil
}

func serve(t *testing.T, r *Router, req *http.Request) envelope {
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_GET(t *testing.T) {
	r := New(testutil.MockContext())
	GET(r, "/echo", echo)

	resp := serve(t, r, httptest.NewRequest(http.MethodGet, "/echo?name=alice", nil))
	require.Equal(t, int64(0), resp.Code)
	require.Equal(t, "alice", resp.Data.Name)
	require.Equal(t, "harmony-testnet", resp.Data.Chain)

	resp = serve(t, r, httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
	require.Equal(t, "Empty name", resp.Error)

	resp = serve(t, r, httptest.NewRequest(http.MethodGet, "/echo?name=fail", nil))
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)
}

func TestRouter_GET_InvalidQuery(t *testing.T) {
	type pageRequest struct {
		Limit int `form:"limit"`
	}

	r := New(testutil.MockContext())
	GET(r, "/page", func(ctx context.Context, req *pageRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	resp := serve(t, r, httptest.NewRequest(http.MethodGet, "/page?limit=ten", nil))
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
	require.Equal(t, "Invalid request", resp.Error)

	resp = serve(t, r, httptest.NewRequest(http.MethodGet, "/page?limit=10", nil))
	require.Equal(t, int64(0), resp.Code)
}

func TestRouter_Middleware(t *testing.T) {
	type stepKey struct{}

	r := New(testutil.MockContext())
	var closed []error
	r.Before(func(ctx context.Context) (context.Context, error) {
		if xcontext.HTTPRequest(ctx).Header.Get("X-Block") != "" {
			return ctx, errorx.New(errorx.Unauthenticated, "Blocked")
		}
		return context.WithValue(ctx, stepKey{}, "before"), nil
	})
	r.After(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})
	GET(r, "/step", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: ctx.Value(stepKey{}).(string)}, nil
	})

	resp := serve(t, r, httptest.NewRequest(http.MethodGet, "/step", nil))
	require.Equal(t, "before", resp.Data.Name)

	req := httptest.NewRequest(http.MethodGet, "/step", nil)
	req.Header.Set("X-Block", "1")
	resp = serve(t, r, req)
	require.Equal(t, int64(errorx.Unauthenticated), resp.Code)

	require.Len(t, closed, 2)
	require.NoError(t, closed[0])
	require.True(t, errorx.Is(closed[1], errorx.Unauthenticated))
}

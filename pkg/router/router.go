package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. Returning an error skips the handler and the error is
// written as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx     context.Context
	inner   *gin.Engine
	befores []MiddlewareFunc
	afters  []CloserFunc
}

// New creates a router. Configs, logger and database of ctx are carried into every request.
func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{ctx: ctx, inner: engine}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, handler))
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(closer CloserFunc) {
	r.afters = append(r.afters, closer)
}

func (r *Router) Handler() http.Handler {
	return r.inner
}

func wrapHandler[Request, Response any](
	r *Router, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := xcontext.Inherit(c.Request.Context(), r.ctx)
		ctx = xcontext.WithHTTPRequest(ctx, c.Request)

		ctx, err := runBefores(ctx, r.befores)
		if err == nil {
			var req Request
			if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind request: %v", bindErr)
				err = errorx.New(errorx.BadRequest, "Invalid request")
			} else {
				var resp *Response
				resp, err = handler(ctx, &req)
				if err == nil {
					ctx = xcontext.WithResponse(ctx, resp)
				}
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			c.JSON(http.StatusOK, newErrorResponse(err))
		} else {
			c.JSON(http.StatusOK, newResponse(xcontext.Response(ctx)))
		}

		for _, after := range r.afters {
			after(ctx)
		}
	}
}

func runBefores(ctx context.Context, befores []MiddlewareFunc) (context.Context, error) {
	for _, before := range befores {
		var err error
		ctx, err = before(ctx)
		if err != nil {
			return ctx, err
		}
	}

	return ctx, nil
}

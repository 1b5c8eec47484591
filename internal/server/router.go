package server

import (
	"net/http"
	"strings"
)

// BasicRouter is a minimal [Router] over [http.ServeMux], sufficient for the
// short-lived OAuth callback listener.
type BasicRouter struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewBasicRouter creates an empty [BasicRouter].
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{mux: http.NewServeMux()}
}

// Use appends middleware to the stack. Middleware registered first runs
// outermost.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a handler for one HTTP method and path, wrapped with the
// registered middleware. Requests with any other method get a 405.
func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	wrapped := r.Apply(handler)

	r.mux.Handle(path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.EqualFold(req.Method, method) {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wrapped.ServeHTTP(w, req)
	}))
}

// Handler registers a [Handler] on every route it declares via
// [Handler.Routes].
func (r *BasicRouter) Handler(handler Handler) {
	wrapped := r.Apply(handler)

	for _, route := range handler.Routes() {
		r.mux.Handle(route, wrapped)
	}
}

// ServeHTTP implements [http.Handler] for the router.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Apply wraps a handler with the middleware stack, innermost last so the
// first registered middleware sees the request first.
func (r *BasicRouter) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}
	return wrapped
}

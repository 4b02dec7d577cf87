// Package module composes prefix-scoped HTTP modules with per-module
// middleware stacks onto a shared router.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/loom/pkg/middleware"
)

// Module serves requests under a single-level path prefix, stripping the
// prefix before dispatching to its inner router.
type Module struct {
	prefix string
	router http.Handler
	stack  middleware.System
}

// New creates a Module for the given prefix (e.g. "/api"). Panics if the
// prefix is empty, missing a leading slash, or multi-level; module prefixes
// are wired at startup, so a bad one is a programming error.
func New(prefix string, router http.Handler) *Module {
	if err := checkPrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
		stack:  middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.stack.Use(mw)
}

// Serve strips the module prefix from the request path and dispatches to the
// inner router through the middleware stack.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := req.URL.Path[len(m.prefix):]
	if inner == "" {
		inner = "/"
	}
	m.stack.Apply(m.router).ServeHTTP(w, rebase(req, inner))
}

func rebase(req *http.Request, path string) *http.Request {
	r := new(http.Request)
	*r = *req
	r.URL = new(url.URL)
	*r.URL = *req.URL
	r.URL.Path = path
	r.URL.RawPath = ""
	return r
}

func checkPrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single-level sub-path: %s", prefix)
	}
	return nil
}

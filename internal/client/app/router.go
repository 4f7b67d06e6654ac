package app

import (
	"sync"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/session"
)

// View names a client screen.
type View string

const (
	ViewLanding   View = "landing"
	ViewAuth      View = "auth"
	ViewDashboard View = "dashboard"
	ViewReport    View = "report"
	ViewUpload    View = "upload"
)

// Protected reports whether the view requires an authenticated session.
func (v View) Protected() bool {
	switch v {
	case ViewDashboard, ViewReport, ViewUpload:
		return true
	}
	return false
}

// Router is the navigation guard. It maps requested views through the session
// state: protected views demand authentication, and public views redirect an
// authenticated user to the dashboard. The mapping is reactive: the router
// subscribes to the session store and re-evaluates the current view on every
// session change, not only when navigation is requested.
type Router struct {
	mu       sync.Mutex
	current  View
	authed   bool
	onChange func(View)
}

func NewRouter(sess *session.Store) *Router {
	r := &Router{current: ViewLanding, authed: sess.IsAuthenticated()}
	r.current = r.resolve(ViewLanding)
	sess.Subscribe(func(u *api.User) {
		r.sessionChanged(u != nil)
	})
	return r
}

// OnChange registers a hook observing every change of the current view.
func (r *Router) OnChange(fn func(View)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate requests v and returns the view actually entered after the guard
// is applied.
func (r *Router) Navigate(v View) View {
	r.mu.Lock()
	resolved := r.resolve(v)
	changed := resolved != r.current
	r.current = resolved
	hook := r.onChange
	r.mu.Unlock()

	if changed && hook != nil {
		hook(resolved)
	}
	return resolved
}

func (r *Router) sessionChanged(authed bool) {
	r.mu.Lock()
	r.authed = authed
	resolved := r.resolve(r.current)
	changed := resolved != r.current
	r.current = resolved
	hook := r.onChange
	r.mu.Unlock()

	if changed && hook != nil {
		hook(resolved)
	}
}

// resolve applies the guard to a requested view. Callers hold r.mu.
func (r *Router) resolve(v View) View {
	if v.Protected() && !r.authed {
		return ViewAuth
	}
	if !v.Protected() && r.authed {
		return ViewDashboard
	}
	return v
}

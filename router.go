package curtain

// Router is the navigation collaborator. Curtain never matches routes beyond
// string equality and label prefixes; resolution belongs to the router's
// owner.
type Router interface {
	Navigate(route string)
	CurrentRoute() string
}

// HistoryRouter is a Router that can step back through visited routes.
// Back pops the current route rather than pushing the previous one.
type HistoryRouter interface {
	Router
	Previous() (route string, ok bool)
	Back()
}

// MemoryRouter is an in-process Router with history and navigation
// listeners.
type MemoryRouter struct {
	history   []string
	listeners []func(from, to string)
}

// NewMemoryRouter creates a router positioned at initial.
func NewMemoryRouter(initial string) *MemoryRouter {
	return &MemoryRouter{history: []string{initial}}
}

// Navigate pushes route and notifies listeners in registration order.
func (r *MemoryRouter) Navigate(route string) {
	from := r.CurrentRoute()
	r.history = append(r.history, route)
	for _, fn := range r.listeners {
		fn(from, route)
	}
}

// Back pops the current route and notifies listeners. No-op at the first
// entry.
func (r *MemoryRouter) Back() {
	if len(r.history) < 2 {
		return
	}
	from := r.CurrentRoute()
	r.history = r.history[:len(r.history)-1]
	to := r.CurrentRoute()
	for _, fn := range r.listeners {
		fn(from, to)
	}
}

// Previous returns the route Back would return to.
func (r *MemoryRouter) Previous() (string, bool) {
	if len(r.history) < 2 {
		return "", false
	}
	return r.history[len(r.history)-2], true
}

// CurrentRoute returns the route at the top of the history.
func (r *MemoryRouter) CurrentRoute() string {
	return r.history[len(r.history)-1]
}

// History returns the visited routes, oldest first. The returned slice
// MUST NOT be mutated.
func (r *MemoryRouter) History() []string {
	return r.history
}

// OnNavigate registers fn to run after every route change.
func (r *MemoryRouter) OnNavigate(fn func(from, to string)) {
	r.listeners = append(r.listeners, fn)
}

package curtain

import (
	"sort"
	"strings"
)

type labelRoute struct {
	prefix string
	label  string
}

// LabelMap resolves the overlay label for a route by longest matching route
// prefix. A prefix matches a route equal to it or any route below it on a
// segment boundary, so "/events" matches "/events/talk-show" but not
// "/eventsx". The prefix "/" is therefore a catch-all. Read-only after
// construction.
type LabelMap struct {
	routes []labelRoute
}

// NewLabelMap builds a label map from prefix -> label pairs.
func NewLabelMap(labels map[string]string) *LabelMap {
	m := &LabelMap{routes: make([]labelRoute, 0, len(labels))}
	for prefix, label := range labels {
		m.routes = append(m.routes, labelRoute{prefix: normalizePrefix(prefix), label: label})
	}
	sort.Slice(m.routes, func(i, j int) bool {
		if len(m.routes[i].prefix) != len(m.routes[j].prefix) {
			return len(m.routes[i].prefix) > len(m.routes[j].prefix)
		}
		return m.routes[i].prefix < m.routes[j].prefix
	})
	return m
}

// DefaultLabels returns the navigation labels of the summit site.
func DefaultLabels() map[string]string {
	return map[string]string{
		"/":        "HOME",
		"/home":    "EVENTS",
		"/about":   "ABOUT",
		"/contact": "CONTACT",
		"/events":  "EVENT",
	}
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

func prefixMatches(prefix, route string) bool {
	if prefix == "/" {
		return strings.HasPrefix(route, "/")
	}
	return route == prefix || strings.HasPrefix(route, prefix+"/")
}

// Resolve returns the label for route. When no prefix matches, the label is
// derived from the route itself: its last segment upper-cased with dashes
// turned into spaces.
func (m *LabelMap) Resolve(route string) string {
	if m != nil {
		for _, r := range m.routes {
			if prefixMatches(r.prefix, route) {
				return r.label
			}
		}
	}
	return humanizeRoute(route)
}

func humanizeRoute(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "HOME"
	}
	if i := strings.LastIndexByte(route, '/'); i >= 0 {
		route = route[i+1:]
	}
	return strings.ToUpper(strings.ReplaceAll(route, "-", " "))
}

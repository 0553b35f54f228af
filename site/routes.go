package site

import "strings"

// Kind identifies which page a route renders.
type Kind uint8

const (
	KindNotFound Kind = iota
	KindLanding
	KindHome
	KindEvent
	KindAbout
	KindContact
)

var kindNames = [...]string{"not-found", "landing", "home", "event", "about", "contact"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

const eventPrefix = "/events/"

// EventRoute returns the detail route for slug.
func EventRoute(slug string) string { return eventPrefix + slug }

// Resolve maps a route to the page kind it renders and, for event routes,
// the slug. A trailing slash is ignored. Unknown routes resolve to
// KindNotFound.
func Resolve(route string) (Kind, string) {
	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	switch route {
	case "/":
		return KindLanding, ""
	case "/home":
		return KindHome, ""
	case "/about":
		return KindAbout, ""
	case "/contact":
		return KindContact, ""
	}
	if slug, ok := strings.CutPrefix(route, eventPrefix); ok && slug != "" && !strings.Contains(slug, "/") {
		return KindEvent, slug
	}
	return KindNotFound, ""
}

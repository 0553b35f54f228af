package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		route string
		kind  Kind
		slug  string
	}{
		{"/", KindLanding, ""},
		{"/home", KindHome, ""},
		{"/home/", KindHome, ""},
		{"/about", KindAbout, ""},
		{"/contact", KindContact, ""},
		{"/events/crisis-in-capital", KindEvent, "crisis-in-capital"},
		{"/events/reel-deal/", KindEvent, "reel-deal"},
		{"/events/", KindNotFound, ""},
		{"/events/a/b", KindNotFound, ""},
		{"/nowhere", KindNotFound, ""},
		{"", KindNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			kind, slug := Resolve(tt.route)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.slug, slug)
		})
	}
}

func TestEventRoute(t *testing.T) {
	assert.Equal(t, "/events/talk-show", EventRoute("talk-show"))
	kind, slug := Resolve(EventRoute("talk-show"))
	assert.Equal(t, KindEvent, kind)
	assert.Equal(t, "talk-show", slug)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "event", KindEvent.String())
	assert.Equal(t, "not-found", KindNotFound.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrap("one two three", 8))
	assert.Equal(t, "one  two", wrap("one  two", 0))
	assert.Equal(t, "a\nlongword\nb", wrap("a longword b", 4))
	assert.Equal(t, "", wrap("   ", 10))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AP", initials("Arjun Patel"))
	assert.Equal(t, "X", initials("x"))
}

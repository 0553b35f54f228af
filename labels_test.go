package curtain

import "testing"

func TestLabelMapResolve(t *testing.T) {
	m := NewLabelMap(DefaultLabels())
	tests := []struct {
		route string
		want  string
	}{
		{"/", "HOME"},
		{"/home", "EVENTS"},
		{"/about", "ABOUT"},
		{"/contact", "CONTACT"},
		{"/events/crisis-in-capital", "EVENT"},
		{"/events", "EVENT"},
		{"/eventsx", "HOME"},
	}
	for _, tt := range tests {
		if got := m.Resolve(tt.route); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestLabelMapLongestPrefixWins(t *testing.T) {
	m := NewLabelMap(map[string]string{
		"/events":           "EVENT",
		"/events/hackathon": "HACK",
	})
	if got := m.Resolve("/events/hackathon"); got != "HACK" {
		t.Errorf("got %q, want HACK", got)
	}
	if got := m.Resolve("/events/other"); got != "EVENT" {
		t.Errorf("got %q, want EVENT", got)
	}
}

func TestLabelMapFallback(t *testing.T) {
	m := NewLabelMap(map[string]string{"/about": "ABOUT"})
	tests := []struct {
		route string
		want  string
	}{
		{"/team-members", "TEAM MEMBERS"},
		{"/events/talk-show", "TALK SHOW"},
		{"/", "HOME"},
	}
	for _, tt := range tests {
		if got := m.Resolve(tt.route); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
	var nilMap *LabelMap
	if got := nilMap.Resolve("/contact"); got != "CONTACT" {
		t.Errorf("nil map Resolve = %q", got)
	}
}

func TestMemoryRouter(t *testing.T) {
	r := NewMemoryRouter("/")
	var seen [][2]string
	r.OnNavigate(func(from, to string) { seen = append(seen, [2]string{from, to}) })

	r.Navigate("/home")
	r.Navigate("/about")
	if r.CurrentRoute() != "/about" {
		t.Errorf("CurrentRoute = %q", r.CurrentRoute())
	}
	r.Back()
	if r.CurrentRoute() != "/home" {
		t.Errorf("after Back = %q", r.CurrentRoute())
	}
	want := [][2]string{{"/", "/home"}, {"/home", "/about"}, {"/about", "/home"}}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
	r.Back()
	r.Back()
	if len(r.History()) != 1 || r.CurrentRoute() != "/" {
		t.Errorf("History = %v", r.History())
	}
}

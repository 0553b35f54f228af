package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 6, c.Len())

	all := c.All()
	assert.Equal(t, "crisis-in-capital", all[0].Slug)
	assert.Equal(t, "reel-deal", all[5].Slug)
	for i, r := range all {
		assert.Equal(t, i+1, r.ID)
		assert.NotEmpty(t, r.Rules, r.Slug)
		assert.NotEmpty(t, r.Rounds, r.Slug)
	}
}

func TestFindBySlugCrisisInCapital(t *testing.T) {
	r, ok := Default().FindBySlug("crisis-in-capital")
	require.True(t, ok)
	assert.Equal(t, "Crisis in Capital", r.Title)
	require.Len(t, r.Rounds, 3)
	assert.Equal(t, "Round 1: The Crash", r.Rounds[0].Name)
	assert.Equal(t, "Round 2: Recovery Strategy", r.Rounds[1].Name)
	assert.Equal(t, "Round 3: The Boardroom", r.Rounds[2].Name)
}

func TestFindBySlugMiss(t *testing.T) {
	c := Default()
	_, ok := c.FindBySlug("not-a-real-event")
	assert.False(t, ok)

	_, err := c.Lookup("not-a-real-event")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `[[event]`},
		{"unknown key", "[[event]]\nslug = \"a\"\ntitle = \"A\"\nprize = 5\n"},
		{"missing slug", "[[event]]\ntitle = \"A\"\n"},
		{"missing title", "[[event]]\nslug = \"a\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseDuplicateSlug(t *testing.T) {
	data := "[[event]]\nslug = \"a\"\ntitle = \"A\"\n[[event]]\nslug = \"a\"\ntitle = \"B\"\n"
	_, err := Parse([]byte(data))
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestReplaceKeepsOldOnError(t *testing.T) {
	c := Default()
	v := c.Version()
	err := c.Replace([]Record{{Slug: "x", Title: "X"}, {Slug: "x", Title: "Y"}})
	require.ErrorIs(t, err, ErrDuplicateSlug)
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, v, c.Version())

	require.NoError(t, c.Replace([]Record{{Slug: "x", Title: "X"}}))
	assert.Equal(t, v+1, c.Version())
	_, ok := c.FindBySlug("crisis-in-capital")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Title = "changed"
	r, _ := c.FindBySlug(all[0].Slug)
	assert.Equal(t, "Crisis in Capital", r.Title)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[event]]\nslug = \"a\"\ntitle = \"A\"\n[[event.round]]\nname = \"R1\"\n"), 0o644))
	recs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "R1", recs[0].Rounds[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	old := DebounceDelay
	DebounceDelay = 10 * time.Millisecond
	t.Cleanup(func() { DebounceDelay = old })

	path := filepath.Join(t.TempDir(), "events.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[event]]\nslug = \"a\"\ntitle = \"A\"\n"), 0o644))
	recs, err := Load(path)
	require.NoError(t, err)
	c, err := New(recs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, c, nil) }()

	// Keep writing until the watcher is up and picks a change.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("[[event]]\nslug = \"b\"\ntitle = \"B\"\n"), 0o644)
		_, ok := c.FindBySlug("b")
		return ok
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchKeepsRecordsOnBadFile(t *testing.T) {
	old := DebounceDelay
	DebounceDelay = 10 * time.Millisecond
	t.Cleanup(func() { DebounceDelay = old })

	path := filepath.Join(t.TempDir(), "events.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[event]]\nslug = \"a\"\ntitle = \"A\"\n"), 0o644))
	c, err := New([]Record{{Slug: "a", Title: "A"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = Watch(ctx, path, c, nil) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[[event]\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	_, ok := c.FindBySlug("a")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Version())
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "events.toml"), Default(), nil)
	assert.Error(t, err)
}

package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestDefaultListingIsComplete(t *testing.T) {
	l := Default()

	assert.NotEmpty(t, l.Name)
	assert.NotEmpty(t, l.Tagline)
	assert.Len(t, l.Rooms, 5)
	assert.Len(t, l.Gallery, 6)
	assert.NotEmpty(t, l.Testimonials)
	assert.NotEmpty(t, l.Contact.Email)
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	path := writeContentFile(t, `
name: "Casa do Rio"
rooms:
  - name: "River Room"
    price: "€60 / night"
    capacity: 2
`)

	l, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Casa do Rio", l.Name)
	// Missing fields fall back to the defaults.
	assert.Equal(t, Default().Tagline, l.Tagline)
	require.Len(t, l.Rooms, 1)
	assert.Equal(t, "River Room", l.Rooms[0].Name)
}

func TestLoadDropsMalformedEntries(t *testing.T) {
	path := writeContentFile(t, `
rooms:
  - name: "  "
  - name: "Kept"
    capacity: 0
gallery:
  - caption: "no title, dropped"
  - title: "Kept"
testimonials:
  - quote: ""
  - quote: "Lovely stay"
    rating: 9
`)

	l, err := Load(path)
	require.NoError(t, err)

	require.Len(t, l.Rooms, 1)
	assert.Equal(t, "Kept", l.Rooms[0].Name)
	assert.Equal(t, 1, l.Rooms[0].Capacity, "capacity clamped to at least one guest")

	require.Len(t, l.Gallery, 1)
	assert.Equal(t, "Kept", l.Gallery[0].Title)

	require.Len(t, l.Testimonials, 1)
	assert.Equal(t, "A guest", l.Testimonials[0].Author)
	assert.Equal(t, 5, l.Testimonials[0].Rating, "rating clamped to five stars")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeContentFile(t, "rooms: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestWatcherSignalsOnWrite(t *testing.T) {
	path := writeContentFile(t, "name: before")
	w := NewWatcher(path, nil)

	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("name: after"), 0o600))

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a watch event after writing the content file")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x"), 0o600))

	w := NewWatcher(path, nil)
	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o600))

	select {
	case <-w.Events:
		t.Fatal("sibling file writes must not signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStartIsIdempotent(t *testing.T) {
	path := writeContentFile(t, "name: x")
	w := NewWatcher(path, nil)

	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	defer w.Stop()

	started, err = w.Start()
	require.NoError(t, err)
	assert.False(t, started)
}

func TestWatcherNoPathIsInert(t *testing.T) {
	w := NewWatcher("", nil)
	started, err := w.Start()
	require.NoError(t, err)
	assert.False(t, started)
	w.Stop()
}

func TestShouldReloadDebounces(t *testing.T) {
	w := NewWatcher("x", nil)
	start := time.Now()

	assert.True(t, w.ShouldReload(start))
	assert.False(t, w.ShouldReload(start.Add(100*time.Millisecond)))
	assert.True(t, w.ShouldReload(start.Add(WatchDebounce)))
}

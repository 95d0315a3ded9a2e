package dedup

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry(t *testing.T) (*Registry, *time.Time) {
	t.Helper()
	r := NewRegistry(DefaultRetention, zerolog.Nop())
	now := time.Now()
	r.now = func() time.Time { return now }
	return r, &now
}

func TestRegistry_FilterNew_FirstSight(t *testing.T) {
	r, _ := newTestRegistry(t)

	out := r.FilterNew([]string{"A.TXT", "B.TXT"})
	assert.Equal(t, []string{"A.TXT", "B.TXT"}, out)
}

func TestRegistry_FilterNew_SuppressesWithinWindow(t *testing.T) {
	r, now := newTestRegistry(t)

	r.FilterNew([]string{"A.TXT"})

	*now = now.Add(5*time.Hour + 59*time.Minute)
	out := r.FilterNew([]string{"A.TXT", "B.TXT"})
	assert.Equal(t, []string{"B.TXT"}, out)
}

func TestRegistry_FilterNew_ReadmitsAfterWindow(t *testing.T) {
	r, now := newTestRegistry(t)

	r.FilterNew([]string{"A.TXT"})

	*now = now.Add(6 * time.Hour)
	out := r.FilterNew([]string{"A.TXT"})
	assert.Equal(t, []string{"A.TXT"}, out, "a name unseen for the full window is new again")
}

func TestRegistry_FilterNew_RefreshExtendsRetention(t *testing.T) {
	r, now := newTestRegistry(t)

	r.FilterNew([]string{"A.TXT"})

	// Seen again at +4h: suppressed, but the clock restarts.
	*now = now.Add(4 * time.Hour)
	assert.Empty(t, r.FilterNew([]string{"A.TXT"}))

	// +4h after the refresh is still inside the window measured from it.
	*now = now.Add(4 * time.Hour)
	assert.Empty(t, r.FilterNew([]string{"A.TXT"}))
}

func TestRegistry_FilterNew_DuplicateWithinBatch(t *testing.T) {
	r, _ := newTestRegistry(t)

	// Input arrives pre-sorted; the second A.TXT was registered by the
	// first within the same call.
	out := r.FilterNew([]string{"A.TXT", "A.TXT", "B.TXT"})
	assert.Equal(t, []string{"A.TXT", "B.TXT"}, out)
}

func TestRegistry_FilterNew_EvictsStaleEntries(t *testing.T) {
	r, now := newTestRegistry(t)

	r.FilterNew([]string{"OLD.TXT"})
	assert.Equal(t, 1, r.Len())

	*now = now.Add(7 * time.Hour)
	r.FilterNew([]string{"NEW.TXT"})
	assert.Equal(t, 1, r.Len(), "stale entry should be evicted on access")
}

func TestRegistry_FilterNew_GlobalAcrossCallers(t *testing.T) {
	r, _ := newTestRegistry(t)

	// Two different feeds share one namespace: the second sighting of a
	// name is suppressed no matter where it came from.
	assert.Equal(t, []string{"SHARED.TXT"}, r.FilterNew([]string{"SHARED.TXT"}))
	assert.Empty(t, r.FilterNew([]string{"SHARED.TXT"}))
}

func TestNewRegistry_RetentionFallback(t *testing.T) {
	r := NewRegistry(0, zerolog.Nop())
	assert.Equal(t, DefaultRetention, r.retention)
}

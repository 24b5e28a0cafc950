package attach

import (
	"testing"
	"time"

	"github.com/npillmayer/arabtext/detector"
	"github.com/npillmayer/arabtext/shaping"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bracket(text string, _, _ bool) (string, error) {
	return "<" + text + ">", nil
}

func testFactory(created *int) Factory {
	conf := detector.DefaultConfig()
	conf.StartupDelay = 0
	f := NewFactory(shaping.ShaperFunc(bracket), 10*time.Millisecond, conf)
	return func(d Display) *detector.Handler {
		*created++
		return f(d)
	}
}

func TestScanAttachesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.attach")
	defer teardown()
	//
	created := 0
	scene := &MemoryScene{}
	a := scene.Add("title", "سلام")
	scene.Add("subtitle", "Hello")
	scene.Add("manual", "مرحبا").Owned = true
	r := NewRegistry(testFactory(&created), DefaultMaxAge)
	assert.Equal(t, 2, r.Scan(scene))
	assert.Equal(t, 0, r.Scan(scene), "expected displays to be attached once")
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.Seen())
	_, ok := r.Handler(3)
	assert.False(t, ok, "expected display with own handler to be left alone")
	//
	r.TickAll()
	assert.Equal(t, "<سلام>", a.Text())
	h, ok := r.Handler(a.ID())
	require.True(t, ok)
	assert.Equal(t, 1, h.Snapshot().Passes)
	assert.Equal(t, []int{1, 2}, r.IDs())
}

func TestHierarchyChanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.attach")
	defer teardown()
	//
	created := 0
	scene := &MemoryScene{}
	scene.Add("a", "س")
	scene.Add("b", "ل")
	r := NewRegistry(testFactory(&created), 0)
	r.Scan(scene)
	require.Equal(t, 2, r.Len())
	//
	scene.Remove("a")
	c := scene.Add("c", "م")
	assert.Equal(t, 1, r.HierarchyChanged(scene))
	assert.Equal(t, 2, r.Len())
	_, ok := r.Handler(1)
	assert.False(t, ok, "expected handler of removed display to be dropped")
	_, ok = r.Handler(c.ID())
	assert.True(t, ok)
	assert.Equal(t, 2, r.Seen())
	assert.Equal(t, 3, created)
}

func TestInvalidationByAge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.attach")
	defer teardown()
	//
	created := 0
	scene := &MemoryScene{}
	scene.Add("a", "س")
	own := scene.Add("b", "ل")
	own.Owned = true
	r := NewRegistry(testFactory(&created), time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	r.Invalidate()
	r.Scan(scene)
	require.Equal(t, 1, created)
	//
	own.Owned = false // user removed the manual handler
	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, r.HierarchyChanged(scene), "expected known displays not to be re-scanned")
	now = now.Add(31 * time.Second)
	assert.Equal(t, 1, r.HierarchyChanged(scene), "expected stale registry to be rebuilt")
	assert.Equal(t, 2, created, "expected existing handler to be kept on rebuild")
	assert.Equal(t, 2, r.Len())
}

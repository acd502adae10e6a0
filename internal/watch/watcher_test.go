package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func startWatcher(t *testing.T, files ...string) <-chan string {
	t.Helper()

	w, err := NewWatcher(0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changed := make(chan string, 16)
	require.NoError(t, w.Watch(files, func(path string) { changed <- path }))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	return changed
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "sizes.txt")
	require.NoError(t, os.WriteFile(report, []byte("a"), 0o644))

	changed := startWatcher(t, report)

	require.NoError(t, os.WriteFile(report, []byte("b"), 0o644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for file change")
	assert.Equal(t, report, path)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "sizes.txt")
	require.NoError(t, os.WriteFile(report, nil, 0o644))

	changed := startWatcher(t, report)

	for i := range 5 {
		require.NoError(t, os.WriteFile(report, []byte{byte(i)}, 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	_, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback after burst")

	_, again := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, again, "expected a single callback per burst")
}

func TestWatcher_ChangeDuringFiredCallbackRunsOnce(t *testing.T) {
	w, err := NewWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	var calls atomic.Int32
	onChange := func(string) { calls.Add(1) }

	// Hold the callback lock so the first timer fires and waits.
	w.cbMu.Lock()
	w.schedule("sizes.txt", onChange)
	time.Sleep(50 * time.Millisecond)
	w.schedule("sizes.txt", onChange)
	time.Sleep(50 * time.Millisecond)
	w.cbMu.Unlock()

	require.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "sizes.txt")
	require.NoError(t, os.WriteFile(report, nil, 0o644))

	changed := startWatcher(t, report)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "unexpected callback for unwatched file")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, w.Watch([]string{filepath.Join(t.TempDir(), "x.txt")}, func(string) {}))
	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(0)
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch([]string{filepath.Join(t.TempDir(), "nope", "x.txt")}, func(string) {})
	assert.ErrorContains(t, err, "watching")
}

package watcher_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sack/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/rpmdb/zlib-1.3-1.x86_64.rpm")
		d.Add("/rpmdb/bash-5.2-3.x86_64.rpm")
		d.Add("/rpmdb/bash-5.2-3.x86_64.rpm")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/rpmdb/bash-5.2-3.x86_64.rpm", "/rpmdb/zlib-1.3-1.x86_64.rpm"}, calls[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/rpmdb/a.rpm")
		time.Sleep(50 * time.Millisecond)
		d.Add("/rpmdb/b.rpm")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot(), "window restarts on every event")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/rpmdb/a.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/rpmdb/b.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/rpmdb/a.rpm"}, {"/rpmdb/b.rpm"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/rpmdb/a.rpm")
		d.Flush()
		require.Equal(t, [][]string{{"/rpmdb/a.rpm"}}, rec.snapshot(), "flush runs synchronously")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1, "timer was stopped by flush")
	})
}

func TestDebouncer_FlushEmptyAndAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Flush()
		assert.Empty(t, rec.snapshot())

		d.Add("/rpmdb/a.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_StopWaitsForCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		release := make(chan struct{})
		var finished atomic.Bool
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			<-release
			finished.Store(true)
		})

		d.Add("/rpmdb/a.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		stopped := make(chan struct{})
		go func() {
			d.Stop()
			close(stopped)
		}()
		synctest.Wait()

		select {
		case <-stopped:
			t.Fatal("Stop returned while a callback was running")
		default:
		}

		close(release)
		<-stopped
		assert.True(t, finished.Load())
	})
}

func TestDebouncer_NoCallbackAfterStop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/rpmdb/a.rpm")
		d.Stop()
		d.Add("/rpmdb/b.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/rpmdb/a.rpm")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("/rpmdb/b.rpm")
		d.Flush()
	})
}

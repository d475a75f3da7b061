// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import (
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
)

// Ticker adapts a periodic timer into a source event emitting tick times.
// The interval must be positive. Ticks are emitted from the adapter's own
// goroutine, serialized against Cleanup: the adapter holds its stop lock
// across each emit, and the cleanup hook takes the same lock before marking
// the adapter stopped, so a tick that loses the race is dropped rather than
// emitted into a torn-down event. Callers composing a ticker with sources
// emitted from other goroutines must still serialize externally. Cleanup of
// the returned event stops the timer and ends the goroutine.
func Ticker(clk clock.Clock, interval time.Duration) (*Event[time.Time], error) {
	if interval <= 0 {
		return nil, errors.NotValidf("interval %v", interval)
	}
	e, emit := New[time.Time]()
	var (
		mu      sync.Mutex
		stopped bool
	)
	stop := make(chan struct{})
	e.OnCleanup(func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
		close(stop)
	})
	go func() {
		timer := clk.NewTimer(interval)
		defer timer.Stop()
		for {
			select {
			case <-stop:
				return
			case t := <-timer.Chan():
				mu.Lock()
				if stopped {
					mu.Unlock()
					return
				}
				emit(t)
				mu.Unlock()
				timer.Reset(interval)
			}
		}
	}()
	return e, nil
}

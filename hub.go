// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import (
	"sync"

	"github.com/juju/pubsub/v2"
)

// FromHub bridges a pubsub topic into a source event. Published payloads
// that assert to A are emitted; anything else is logged and dropped. The
// hub delivers callbacks on its own goroutine, serialized against Cleanup
// the same way [Ticker] is: the callback holds the stop lock across emit
// and the cleanup hook takes that lock before marking the bridge stopped,
// so a delivery racing teardown is dropped. Cleanup of the returned event
// releases the hub subscription.
func FromHub[A any](hub *pubsub.SimpleHub, topic string) *Event[A] {
	e, emit := New[A]()
	var (
		mu      sync.Mutex
		stopped bool
	)
	unsub := hub.Subscribe(topic, func(_ string, data interface{}) {
		v, ok := data.(A)
		if !ok {
			logger.Warningf("dropping %q payload of type %T", topic, data)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		emit(v)
	})
	e.OnCleanup(func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
		unsub()
	})
	return e
}

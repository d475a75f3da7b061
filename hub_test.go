// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse_test

import (
	"slices"
	"testing"
	"time"

	"github.com/juju/pubsub/v2"

	"code.hybscloud.com/pulse"
	"code.hybscloud.com/pulse/pulsetest"
)

const hubWait = 5 * time.Second

func publish(t *testing.T, hub *pubsub.SimpleHub, topic string, data interface{}) {
	t.Helper()
	select {
	case <-pubsub.Wait(hub.Publish(topic, data)):
	case <-time.After(hubWait):
		t.Fatalf("publish of %v to %q did not complete", data, topic)
	}
}

func TestFromHubEmitsMatchingPayloads(t *testing.T) {
	hub := pubsub.NewSimpleHub(nil)
	e := pulse.FromHub[string](hub, "greetings")
	defer e.Cleanup()

	rec := pulsetest.NewRecorder[string]()
	cancel := e.Subscribe(rec.Handle)
	defer cancel()

	publish(t, hub, "greetings", "hello")
	publish(t, hub, "greetings", "world")

	if got := rec.Values(); !slices.Equal(got, []string{"hello", "world"}) {
		t.Fatalf("got %v, want [hello world]", got)
	}
}

func TestFromHubDropsMismatchedPayloads(t *testing.T) {
	hub := pubsub.NewSimpleHub(nil)
	e := pulse.FromHub[string](hub, "greetings")
	defer e.Cleanup()

	rec := pulsetest.NewRecorder[string]()
	cancel := e.Subscribe(rec.Handle)
	defer cancel()

	publish(t, hub, "greetings", 42) // wrong type, dropped
	publish(t, hub, "greetings", "hello")

	if got := rec.Values(); !slices.Equal(got, []string{"hello"}) {
		t.Fatalf("got %v, want [hello]", got)
	}
}

func TestFromHubCleanupReleasesSubscription(t *testing.T) {
	hub := pubsub.NewSimpleHub(nil)
	e := pulse.FromHub[string](hub, "greetings")

	rec := pulsetest.NewRecorder[string]()
	e.Subscribe(rec.Handle)

	publish(t, hub, "greetings", "hello")
	e.Cleanup()
	publish(t, hub, "greetings", "late")

	if got := rec.Values(); !slices.Equal(got, []string{"hello"}) {
		t.Fatalf("got %v, want [hello]", got)
	}
}

func TestFromHubCleanupRacingPublish(t *testing.T) {
	// Tear down while a publish may still be delivering on the hub's
	// goroutine. A delivery that loses the race must be dropped, never
	// emitted against the cleaned-up event.
	for i := range 50 {
		hub := pubsub.NewSimpleHub(nil)
		e := pulse.FromHub[int](hub, "bursts")
		e.Subscribe(func(int) {})
		done := pubsub.Wait(hub.Publish("bursts", i))
		e.Cleanup()
		select {
		case <-done:
		case <-time.After(hubWait):
			t.Fatalf("publish %d did not complete", i)
		}
	}
}

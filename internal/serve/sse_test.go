package serve

import (
	"bufio"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReloadHubDeliversToSubscribers(t *testing.T) {
	h := newReloadHub()

	a, detachA := h.subscribe()
	b, detachB := h.subscribe()
	defer detachA()
	defer detachB()

	h.notify("reload")
	require.Equal(t, "reload", <-a)
	require.Equal(t, "reload", <-b)
}

func TestReloadHubDetachStopsDelivery(t *testing.T) {
	h := newReloadHub()

	ch, detach := h.subscribe()
	h.notify("one")
	require.Equal(t, "one", <-ch)

	detach()
	h.notify("two")
	select {
	case msg := <-ch:
		t.Fatalf("detached subscriber received %q", msg)
	default:
	}
}

func TestReloadHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := newReloadHub()

	slow, detach := h.subscribe()
	defer detach()

	// fill the buffer and keep notifying; notify must never block
	for i := 0; i < 20; i++ {
		h.notify("burst")
	}

	fresh, detachFresh := h.subscribe()
	defer detachFresh()
	h.notify("after")
	require.Equal(t, "after", <-fresh)

	// the slow channel kept only its buffer worth; the rest were dropped
	drained := 0
	for {
		select {
		case <-slow:
			drained++
			continue
		default:
		}
		break
	}
	require.Greater(t, drained, 0)
	require.Less(t, drained, 20)
}

// readEvents pumps the data lines off an event stream.
func readEvents(r io.Reader) <-chan string {
	ch := make(chan string, 8)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if data, ok := strings.CutPrefix(sc.Text(), "data: "); ok {
				ch <- data
			}
		}
	}()
	return ch
}

func nextEvent(t *testing.T, events <-chan string) string {
	t.Helper()
	select {
	case msg, ok := <-events:
		require.True(t, ok, "event stream closed early")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return ""
	}
}

func TestRebuildNotifiesSubscribers(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"2023-05-01-post.md": "x",
	})

	events, detach := s.hub.subscribe()
	defer detach()

	require.NoError(t, s.rebuild())
	require.Equal(t, "reload", nextEvent(t, events))
}

func TestDevEventsStreamsRebuildReload(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"2023-05-01-post.md": "x",
	})
	ts := httptest.NewServer(s.handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/dev/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := readEvents(resp.Body)
	// the greeting confirms the subscription is in place
	require.Equal(t, "hello", nextEvent(t, events))

	require.NoError(t, s.rebuild())
	require.Equal(t, "reload", nextEvent(t, events))
}

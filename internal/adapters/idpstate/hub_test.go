package idpstate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
)

func TestHub_SubscribeDeliversCurrentState(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	got := make(chan *domainauth.Identity, 1)
	unsub := hub.Subscribe(func(id *domainauth.Identity) { got <- id })
	defer unsub()

	select {
	case id := <-got:
		assert.Nil(t, id)
	case <-time.After(time.Second):
		t.Fatal("expected initial notification")
	}
}

func TestHub_SetCurrentNotifiesInOrder(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var mu sync.Mutex
	var seen []string
	done := make(chan struct{}, 4)
	unsub := hub.Subscribe(func(id *domainauth.Identity) {
		mu.Lock()
		if id == nil {
			seen = append(seen, "<nil>")
		} else {
			seen = append(seen, id.UserID)
		}
		mu.Unlock()
		done <- struct{}{}
	})
	defer unsub()

	hub.SetCurrent(&domainauth.Identity{UserID: "u1"})
	hub.SetCurrent(&domainauth.Identity{UserID: "u2"})
	hub.SetCurrent(nil)

	for i := 0; i < 4; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("missing notification")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"<nil>", "u1", "u2", "<nil>"}, seen)
}

func TestHub_UnsubscribeStopsNotifications(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	initial := make(chan struct{}, 1)
	count := 0
	unsub := hub.Subscribe(func(*domainauth.Identity) {
		count++
		select {
		case initial <- struct{}{}:
		default:
		}
	})

	select {
	case <-initial:
	case <-time.After(time.Second):
		t.Fatal("expected initial notification")
	}

	unsub()
	hub.SetCurrent(&domainauth.Identity{UserID: "u1"})

	// Give the delivery goroutine a moment; the count must not move.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, count)
}

func TestHub_CurrentReturnsCopy(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.SetCurrent(&domainauth.Identity{UserID: "u1", Email: "u1@example.com"})

	first := hub.Current()
	require.NotNil(t, first)
	first.UserID = "mutated"

	second := hub.Current()
	require.NotNil(t, second)
	assert.Equal(t, "u1", second.UserID)
}

func TestCloneIdentity_Nil(t *testing.T) {
	assert.Nil(t, CloneIdentity(nil))
}

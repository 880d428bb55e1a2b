package ws

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestClientCountTracksSubscriptions(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	first := &Client{hub: hub, chatID: "dm_a_b", send: make(chan []byte, 1)}
	second := &Client{hub: hub, chatID: "dm_a_b", send: make(chan []byte, 1)}
	hub.registerClient(first)
	hub.registerClient(second)

	if got := hub.ClientCount("dm_a_b"); got != 2 {
		t.Fatalf("expected 2 subscribed clients, got %d", got)
	}
	if got := hub.ClientCount("dm_x_y"); got != 0 {
		t.Fatalf("expected 0 clients on an unknown chat, got %d", got)
	}

	hub.unregisterClient(first)
	if got := hub.ClientCount("dm_a_b"); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}
}

func TestDeliverReachesSubscribedClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	client := &Client{hub: hub, chatID: "dm_a_b", send: make(chan []byte, 1)}
	other := &Client{hub: hub, chatID: "dm_c_d", send: make(chan []byte, 1)}
	hub.registerClient(client)
	hub.registerClient(other)

	hub.deliver(&envelope{chatID: "dm_a_b", data: []byte(`{"content":"hi"}`)})

	select {
	case data := <-client.send:
		if string(data) != `{"content":"hi"}` {
			t.Fatalf("unexpected payload: %s", data)
		}
	default:
		t.Fatal("subscribed client received nothing")
	}

	select {
	case <-other.send:
		t.Fatal("client on another chat received the message")
	default:
	}
}

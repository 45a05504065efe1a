package session

import (
	"encoding/json"
	"testing"

	"github.com/ncdevice/ncdevice/internal/events"
	"github.com/ncdevice/ncdevice/internal/model"
	"github.com/ncdevice/ncdevice/internal/protocol"
)

func marshalArgs(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	return b
}

func newTestTree() *model.Tree {
	bus := events.New()
	tree := model.NewTree(bus)
	model.BuildDefaultTree(tree, model.DefaultTreeConfig{
		Identity: model.DeviceIdentity{
			NcVersion:    "v1.0",
			Manufacturer: protocol.Manufacturer{Name: "Example Manufacturer"},
			Product:      protocol.Product{Name: "ncdevice", Key: "ncdevice", RevisionLevel: "1"},
			SerialNumber: "0001",
		},
	})
	return tree
}

func TestHandleFrameMalformedJSONProducesErrorMessage(t *testing.T) {
	s := NewSession("s1")
	tree := newTestTree()

	HandleFrame(s, tree, []byte(`{not json`))

	msg, ok := s.NextOutbound()
	if !ok {
		t.Fatal("expected a queued reply")
	}
	errMsg, ok := msg.(protocol.ErrorMessage)
	if !ok {
		t.Fatalf("reply has unexpected type %T", msg)
	}
	if errMsg.Status != protocol.StatusBadCommandFormat {
		t.Errorf("status = %v, want StatusBadCommandFormat", errMsg.Status)
	}
}

func TestHandleFrameCommandMessageRepliesWithResponses(t *testing.T) {
	s := NewSession("s2")
	tree := newTestTree()

	raw := []byte(`{"messageType":0,"commands":[{"handle":1,"oid":1,"methodId":{"level":1,"index":1},"arguments":{"id":{"level":1,"index":5}}}]}`)
	HandleFrame(s, tree, raw)

	msg, ok := s.NextOutbound()
	if !ok {
		t.Fatal("expected a queued reply")
	}
	resp, ok := msg.(protocol.CommandResponseMessage)
	if !ok {
		t.Fatalf("reply has unexpected type %T", msg)
	}
	if len(resp.Responses) != 1 || resp.Responses[0].Handle != 1 {
		t.Fatalf("unexpected responses: %+v", resp.Responses)
	}
	if resp.Responses[0].Result.Status != protocol.StatusOk {
		t.Errorf("status = %v, want StatusOk", resp.Responses[0].Result.Status)
	}
}

func TestHandleFrameSubscriptionMessageUpdatesSessionAndReplies(t *testing.T) {
	s := NewSession("s3")
	tree := newTestTree()

	raw := []byte(`{"messageType":3,"subscriptions":[1,2]}`)
	HandleFrame(s, tree, raw)

	if !s.IsSubscribed(1) || !s.IsSubscribed(2) {
		t.Fatal("expected session subscribed to oids 1 and 2")
	}

	msg, ok := s.NextOutbound()
	if !ok {
		t.Fatal("expected a queued reply")
	}
	resp, ok := msg.(protocol.SubscriptionResponseMessage)
	if !ok {
		t.Fatalf("reply has unexpected type %T", msg)
	}
	if len(resp.Subscriptions) != 2 {
		t.Errorf("len(Subscriptions) = %d, want 2", len(resp.Subscriptions))
	}
}

func TestFanOutDeliversOnlyToSubscribedSessions(t *testing.T) {
	bus := events.New()
	tree := model.NewTree(bus)
	model.BuildDefaultTree(tree, model.DefaultTreeConfig{
		Identity: model.DeviceIdentity{
			NcVersion:    "v1.0",
			Manufacturer: protocol.Manufacturer{Name: "Example Manufacturer"},
			Product:      protocol.Product{Name: "ncdevice", Key: "ncdevice", RevisionLevel: "1"},
			SerialNumber: "0001",
		},
	})

	registry := NewRegistry()
	subscribed := NewSession("subscribed")
	subscribed.SetSubscriptions([]uint32{1})
	unsubscribed := NewSession("unsubscribed")
	registry.Add(subscribed)
	registry.Add(unsubscribed)

	done := make(chan struct{})
	go func() {
		RunFanOut(bus, registry, nil)
		close(done)
	}()

	resp := tree.Dispatch(protocol.Command{
		Handle:   1,
		Oid:      1,
		MethodID: protocol.ElementId{Level: 1, Index: 2},
		Arguments: marshalArgs(t, protocol.SetPropertyArgs{
			ID:    protocol.ElementId{Level: 1, Index: 6},
			Value: "label",
		}),
	})
	if resp.Result.Status != protocol.StatusOk {
		t.Fatalf("dispatch failed: %+v", resp.Result)
	}

	msg, ok := subscribed.NextOutbound()
	if !ok {
		t.Fatal("expected subscribed session to receive a notification")
	}
	if _, ok := msg.(protocol.NotificationMessage); !ok {
		t.Fatalf("unexpected message type %T", msg)
	}

	bus.Close()
	<-done

	unsubscribed.Close()
	if msg, ok := unsubscribed.NextOutbound(); ok {
		t.Errorf("unsubscribed session received %T, want nothing", msg)
	}
}

package session

import "testing"

func TestSubscriptionSetReplacesWholesale(t *testing.T) {
	s := NewSession("s1")
	s.SetSubscriptions([]uint32{1, 2, 3})
	if !s.IsSubscribed(2) {
		t.Error("expected subscription to oid 2")
	}
	s.SetSubscriptions([]uint32{4})
	if s.IsSubscribed(2) {
		t.Error("expected oid 2 subscription to be cleared by replacement")
	}
	if !s.IsSubscribed(4) {
		t.Error("expected subscription to oid 4")
	}
}

func TestSendThenCloseDrainsBeforeEOF(t *testing.T) {
	s := NewSession("s2")
	s.Send("first")
	s.Send("second")
	s.Close()

	v1, ok := s.NextOutbound()
	if !ok || v1 != "first" {
		t.Fatalf("first = %v, %v", v1, ok)
	}
	v2, ok := s.NextOutbound()
	if !ok || v2 != "second" {
		t.Fatalf("second = %v, %v", v2, ok)
	}
	if _, ok := s.NextOutbound(); ok {
		t.Error("expected queue to report closed after draining")
	}
}

func TestRegistrySubscribersOf(t *testing.T) {
	r := NewRegistry()
	a := NewSession("a")
	a.SetSubscriptions([]uint32{1})
	b := NewSession("b")
	b.SetSubscriptions([]uint32{1, 2})
	r.Add(a)
	r.Add(b)

	subs := r.SubscribersOf(2)
	if len(subs) != 1 || subs[0].ID != "b" {
		t.Fatalf("unexpected subscribers of oid 2: %+v", subs)
	}

	r.Remove("b")
	if got := r.SubscribersOf(2); len(got) != 0 {
		t.Errorf("expected no subscribers after removal, got %d", len(got))
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

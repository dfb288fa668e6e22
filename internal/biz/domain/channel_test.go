package domain

import "testing"

func TestRegistry_BuiltIns(t *testing.T) {
	r := NewRegistry()

	all, ok := r.Resolve(ChannelAll)
	if !ok || !all.CanPost || !all.ViewportScoped {
		t.Errorf("Unexpected 'all' channel: %+v", all)
	}

	alerts, ok := r.Resolve(ChannelAlerts)
	if !ok {
		t.Fatal("Expected alerts channel to be registered")
	}
	if alerts.CanPost {
		t.Error("Expected alerts channel not to accept posts")
	}
	if alerts.ViewportScoped {
		t.Error("Expected alerts channel not to be viewport scoped")
	}
}

func TestRegistry_ResolveUnknownFallsBack(t *testing.T) {
	r := NewRegistry()

	ch, ok := r.Resolve("nonsense")
	if ok {
		t.Error("Expected unknown id to be reported as unknown")
	}
	if ch.ID != r.Default().ID {
		t.Errorf("Expected fallback to default channel, got %q", ch.ID)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	ext := Channel{ID: "compact", Name: "Compact", CanRequest: true}
	if err := r.Register(ext); err != nil {
		t.Fatalf("Unexpected register error: %v", err)
	}

	got, ok := r.Resolve("compact")
	if !ok || got.Name != "Compact" {
		t.Errorf("Expected registered channel, got %+v (known=%v)", got, ok)
	}

	if err := r.Register(ext); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
	if err := r.Register(Channel{}); err == nil {
		t.Error("Expected empty id registration to fail")
	}
}

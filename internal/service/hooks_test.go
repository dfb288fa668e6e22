package service

import (
	"testing"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/usecase"
)

func TestHookRegistry_DispatchOrder(t *testing.T) {
	hooks := NewHookRegistry()

	var calls []string
	hooks.Register("first", func(*usecase.SyncEvent) { calls = append(calls, "first") })
	hooks.Register("second", func(*usecase.SyncEvent) { calls = append(calls, "second") })

	hooks.AfterSync(&usecase.SyncEvent{Channel: domain.Channel{ID: domain.ChannelAll}})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("Expected registration order dispatch, got %v", calls)
	}
}

func TestHookRegistry_Unregister(t *testing.T) {
	hooks := NewHookRegistry()

	called := false
	hooks.Register("gone", func(*usecase.SyncEvent) { called = true })
	hooks.Unregister("gone")

	hooks.AfterSync(&usecase.SyncEvent{})

	if called {
		t.Error("Expected unregistered hook not to be called")
	}
}

func TestHookRegistry_PanickingHookDoesNotBreakOthers(t *testing.T) {
	hooks := NewHookRegistry()

	hooks.Register("bad", func(*usecase.SyncEvent) { panic("boom") })
	survived := false
	hooks.Register("good", func(*usecase.SyncEvent) { survived = true })

	hooks.AfterSync(&usecase.SyncEvent{})

	if !survived {
		t.Error("Expected later hooks to run after a panic")
	}
}

func TestHookRegistry_ReplaceKeepsPosition(t *testing.T) {
	hooks := NewHookRegistry()

	var calls []string
	hooks.Register("a", func(*usecase.SyncEvent) { calls = append(calls, "a1") })
	hooks.Register("b", func(*usecase.SyncEvent) { calls = append(calls, "b") })
	hooks.Register("a", func(*usecase.SyncEvent) { calls = append(calls, "a2") })

	hooks.AfterSync(&usecase.SyncEvent{})

	if len(calls) != 2 || calls[0] != "a2" || calls[1] != "b" {
		t.Errorf("Expected replaced hook to keep its slot, got %v", calls)
	}
}

package service

import (
	"fmt"
	"sync"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/usecase"
)

// HookRegistry dispatches post-sync events to named extension hooks
// Hooks observe the merged state but must not alter it.
type HookRegistry struct {
	mu    sync.RWMutex
	names []string
	hooks map[string]func(*usecase.SyncEvent)
}

// NewHookRegistry creates a new hook registry
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{hooks: make(map[string]func(*usecase.SyncEvent))}
}

// Register adds or replaces a named hook
func (h *HookRegistry) Register(name string, fn func(*usecase.SyncEvent)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.hooks[name]; !exists {
		h.names = append(h.names, name)
	}
	h.hooks[name] = fn
}

// Unregister removes a named hook
func (h *HookRegistry) Unregister(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.hooks[name]; !exists {
		return
	}
	delete(h.hooks, name)
	for i, n := range h.names {
		if n == name {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

// AfterSync invokes all hooks in registration order. A panicking hook is
// logged and skipped so it cannot break the sync cycle.
func (h *HookRegistry) AfterSync(ev *usecase.SyncEvent) {
	h.mu.RLock()
	names := make([]string, len(h.names))
	copy(names, h.names)
	h.mu.RUnlock()

	for _, name := range names {
		h.mu.RLock()
		fn := h.hooks[name]
		h.mu.RUnlock()
		if fn == nil {
			continue
		}
		h.invoke(name, fn, ev)
	}
}

func (h *HookRegistry) invoke(name string, fn func(*usecase.SyncEvent), ev *usecase.SyncEvent) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Hooks] Hook %s panicked: %v\n", name, r)
		}
	}()
	fn(ev)
}

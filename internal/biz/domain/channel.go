package domain

import "fmt"

// Channel IDs for the built-in channels.
const (
	ChannelAll     = "all"
	ChannelFaction = "faction"
	ChannelAlerts  = "alerts"
)

// Channel represents a named message stream
type Channel struct {
	ID   string
	Name string

	// ViewportScoped channels are reset when the map viewport moves far
	// enough from the last synced bounding box.
	ViewportScoped bool

	// CanRequest indicates the channel is polled from the server.
	CanRequest bool

	// CanPost indicates the channel accepts outbound messages.
	CanPost bool
}

// Registry holds all known channels
// Built-in channels are created at setup; extension channels may be
// registered afterwards but never replaced.
type Registry struct {
	channels  []Channel
	index     map[string]int
	defaultID string
}

// NewRegistry creates a registry with the built-in channels
func NewRegistry() *Registry {
	r := &Registry{
		index:     make(map[string]int),
		defaultID: ChannelAll,
	}
	r.add(Channel{ID: ChannelAll, Name: "All", ViewportScoped: true, CanRequest: true, CanPost: true})
	r.add(Channel{ID: ChannelFaction, Name: "Faction", ViewportScoped: true, CanRequest: true, CanPost: true})
	r.add(Channel{ID: ChannelAlerts, Name: "Alerts", CanRequest: true})
	return r
}

func (r *Registry) add(ch Channel) {
	r.index[ch.ID] = len(r.channels)
	r.channels = append(r.channels, ch)
}

// Register adds an extension channel
func (r *Registry) Register(ch Channel) error {
	if ch.ID == "" {
		return fmt.Errorf("channel id is required")
	}
	if _, exists := r.index[ch.ID]; exists {
		return fmt.Errorf("channel %q already registered", ch.ID)
	}
	r.add(ch)
	return nil
}

// Resolve returns the channel for the given id, falling back to the default
// channel when the id is unknown. The second return value reports whether the
// id was known. It never fails.
func (r *Registry) Resolve(id string) (Channel, bool) {
	if i, ok := r.index[id]; ok {
		return r.channels[i], true
	}
	fmt.Printf("[Chat] Unknown channel %q, falling back to %q\n", id, r.defaultID)
	return r.channels[r.index[r.defaultID]], false
}

// Default returns the default channel
func (r *Registry) Default() Channel {
	return r.channels[r.index[r.defaultID]]
}

// All returns all registered channels in registration order
func (r *Registry) All() []Channel {
	out := make([]Channel, len(r.channels))
	copy(out, r.channels)
	return out
}

package domain

// TimestampUnset is the watermark sentinel for an empty channel state.
const TimestampUnset = -1

// StoredMessage is the per-GUID record kept in a channel state
type StoredMessage struct {
	Timestamp  int64
	Automated  bool
	Rendered   string
	SenderName string
	Message    Message
}

// ChannelState holds the mutable synchronization state of one channel
// Invariant: Order contains each GUID in Messages exactly once, in ascending
// chronological position.
type ChannelState struct {
	Messages map[string]*StoredMessage
	Order    []string

	OldestTimestamp int64
	OldestGUID      string
	NewestTimestamp int64
	NewestGUID      string
}

// Empty reports whether no message has been ingested yet
func (s *ChannelState) Empty() bool {
	return s.OldestTimestamp == TimestampUnset
}

// Has reports whether a GUID has already been ingested
func (s *ChannelState) Has(guid string) bool {
	_, ok := s.Messages[guid]
	return ok
}

// Store owns the channel states for a session
// States are created by Reset, which must be called once per channel at
// setup; Get never creates implicitly.
type Store struct {
	states map[string]*ChannelState
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{states: make(map[string]*ChannelState)}
}

// Get returns the state for a channel, or nil when the channel was never
// reset.
func (s *Store) Get(channelID string) *ChannelState {
	return s.states[channelID]
}

// Reset clears a channel's state to empty, creating it if needed
func (s *Store) Reset(channelID string) {
	s.states[channelID] = &ChannelState{
		Messages:        make(map[string]*StoredMessage),
		OldestTimestamp: TimestampUnset,
		NewestTimestamp: TimestampUnset,
	}
}

package domain

import (
	"encoding/json"
	"fmt"
)

// Category bitmask values carried on raw records.
const (
	CategoryPublic = 1 << iota
	CategorySecure
	CategoryAlert
)

// Message kinds reported by the server.
const (
	KindPlayerGenerated  = "PLAYER_GENERATED"
	KindSystemBroadcast  = "SYSTEM_BROADCAST"
	KindSystemNarrowcast = "SYSTEM_NARROWCAST"
)

// Sender identifies the originating player of a message
type Sender struct {
	Name string
	Team string
}

// Message represents a parsed message entity
// It is immutable once parsed.
type Message struct {
	GUID        string
	Timestamp   int64 // milliseconds
	Public      bool
	Secure      bool
	Alert       bool
	MsgToPlayer bool
	Kind        string
	Narrowcast  bool
	Automated   bool
	Team        string
	Sender      Sender
	Markup      []MarkupEntity
}

// MarkupEntity is one element of a message's markup list
type MarkupEntity struct {
	Type string
	Data MarkupData
}

// MarkupData carries the payload of a markup entity
type MarkupData struct {
	Plain string `json:"plain,omitempty"`
	Name  string `json:"name,omitempty"`
	Team  string `json:"team,omitempty"`
}

// UnmarshalJSON decodes the wire form of a markup entity, a two element
// tuple of [type, payload].
func (e *MarkupEntity) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("decode markup tuple: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("markup tuple has %d elements, want 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &e.Type); err != nil {
		return fmt.Errorf("decode markup type: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &e.Data); err != nil {
		return fmt.Errorf("decode markup data: %w", err)
	}
	return nil
}

// MarshalJSON encodes the entity back into its tuple wire form.
func (e MarkupEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.Type, e.Data})
}

// Plext is the raw message payload carried inside a record
type Plext struct {
	Text       string         `json:"text"`
	Team       string         `json:"team"`
	PlextType  string         `json:"plextType"`
	Categories int            `json:"categories"`
	Markup     []MarkupEntity `json:"markup"`
}

// RawRecord is one element of a fetch response: [guid, timestampMs, wrapper]
type RawRecord struct {
	GUID        string
	TimestampMs int64
	Plext       Plext
}

// UnmarshalJSON decodes the wire tuple form of a record.
func (r *RawRecord) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("decode record tuple: %w", err)
	}
	if len(tuple) != 3 {
		return fmt.Errorf("record tuple has %d elements, want 3", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &r.GUID); err != nil {
		return fmt.Errorf("decode record guid: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &r.TimestampMs); err != nil {
		return fmt.Errorf("decode record timestamp: %w", err)
	}
	var wrapper struct {
		Plext Plext `json:"plext"`
	}
	if err := json.Unmarshal(tuple[2], &wrapper); err != nil {
		return fmt.Errorf("decode record plext: %w", err)
	}
	r.Plext = wrapper.Plext
	return nil
}

// MarshalJSON encodes the record back into its tuple wire form.
func (r RawRecord) MarshalJSON() ([]byte, error) {
	wrapper := struct {
		Plext Plext `json:"plext"`
	}{Plext: r.Plext}
	return json.Marshal([3]interface{}{r.GUID, r.TimestampMs, wrapper})
}

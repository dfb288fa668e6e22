package usecase

import (
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

// Merger folds fetched batches into channel states
type Merger struct {
	store *domain.Store
}

// NewMerger creates a new merger
func NewMerger(store *domain.Store) *Merger {
	return &Merger{store: store}
}

// Merge deduplicates a batch against the channel state, updates the
// watermarks and inserts accepted messages into the order list. The batch is
// ascending by time when ascending is true, descending otherwise. Returns the
// number of newly accepted messages.
//
// Merging is idempotent: a batch already ingested leaves the state untouched.
func (m *Merger) Merge(channelID string, batch []domain.RawRecord, olderRequest, ascending bool) int {
	state := m.store.Get(channelID)
	if state == nil || len(batch) == 0 {
		return 0
	}

	m.updateWatermarks(state, batch, olderRequest, ascending)

	accepted := 0
	for _, rec := range batch {
		if state.Has(rec.GUID) {
			continue
		}

		msg := ParseMessage(rec)
		state.Messages[rec.GUID] = &domain.StoredMessage{
			Timestamp:  rec.TimestampMs,
			Automated:  msg.Automated,
			Rendered:   RenderContent(msg),
			SenderName: msg.Sender.Name,
			Message:    msg,
		}

		// The order list trusts the delivery direction: ascending batches
		// extend the tail, descending batches extend the head.
		if ascending {
			state.Order = append(state.Order, rec.GUID)
		} else {
			state.Order = append([]string{rec.GUID}, state.Order...)
		}
		accepted++
	}

	return accepted
}

// updateWatermarks applies the once-per-batch watermark rule. The batch edges
// are positional: the oldest element is first under ascending delivery and
// last otherwise.
func (m *Merger) updateWatermarks(state *domain.ChannelState, batch []domain.RawRecord, olderRequest, ascending bool) {
	oldest := batch[len(batch)-1]
	newest := batch[0]
	if ascending {
		oldest, newest = newest, oldest
	}

	empty := state.Empty()

	// When timestamps tie, only an explicit older-messages request may move
	// the oldest GUID; this keeps the continuation cursor stable.
	if empty || (oldest.TimestampMs <= state.OldestTimestamp &&
		(olderRequest || oldest.TimestampMs != state.OldestTimestamp)) {
		state.OldestTimestamp = oldest.TimestampMs
		state.OldestGUID = oldest.GUID
	}

	if empty || (newest.TimestampMs >= state.NewestTimestamp &&
		(!olderRequest || newest.TimestampMs != state.NewestTimestamp)) {
		state.NewestTimestamp = newest.TimestampMs
		state.NewestGUID = newest.GUID
	}
}

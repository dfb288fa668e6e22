package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// ErrClientIdle signals that the client is idle and no request was made.
// The channel's display is considered stale until the client resumes.
var ErrClientIdle = errors.New("client idle, request suppressed")

// SyncEvent describes one successful channel sync for observers
type SyncEvent struct {
	Channel  domain.Channel
	Response []domain.RawRecord
	Accepted int
	State    *domain.ChannelState
}

// SyncObserver is notified after each successful channel sync
// Observers see the merged state but must not alter it.
type SyncObserver interface {
	AfterSync(ev *SyncEvent)
}

// SyncDriver issues polling requests shaped by the channel watermarks and
// feeds the responses through the merger and renderer. At most one request
// per channel is in flight; a failed request is retried exactly once.
type SyncDriver struct {
	store    *domain.Store
	registry *domain.Registry
	merger   *Merger
	renderer *Renderer
	target   repo.RenderTarget

	transport repo.Transport
	viewport  func() domain.Bounds
	idle      func() bool
	observer  SyncObserver

	mu       sync.Mutex
	inflight map[string]bool

	malformed atomic.Int64
}

// NewSyncDriver creates a new sync driver. viewport provides the current map
// bounding box; idle is the external activity probe and may be nil.
func NewSyncDriver(
	store *domain.Store,
	registry *domain.Registry,
	merger *Merger,
	renderer *Renderer,
	target repo.RenderTarget,
	transport repo.Transport,
	viewport func() domain.Bounds,
	idle func() bool,
) *SyncDriver {
	return &SyncDriver{
		store:     store,
		registry:  registry,
		merger:    merger,
		renderer:  renderer,
		target:    target,
		transport: transport,
		viewport:  viewport,
		idle:      idle,
		inflight:  make(map[string]bool),
	}
}

// SetObserver sets the post-sync observer
func (d *SyncDriver) SetObserver(obs SyncObserver) {
	d.observer = obs
}

// MalformedResponses returns the count of malformed responses seen so far
func (d *SyncDriver) MalformedResponses() int64 {
	return d.malformed.Load()
}

// RequestChannel issues one fetch for a channel. wantOlder pages toward the
// past from the oldest watermark; otherwise the driver walks forward from
// the newest watermark. The call is a no-op while another request for the
// same channel is in flight, unless this is the designated retry.
func (d *SyncDriver) RequestChannel(ctx context.Context, channelID string, wantOlder, isRetry bool) error {
	ch, _ := d.registry.Resolve(channelID)
	if !ch.CanRequest {
		return nil
	}

	// The idle probe only gates fresh requests. A retry belongs to a request
	// already past the guard and must run to completion so the in-flight flag
	// is released.
	if !isRetry && d.idle != nil && d.idle() {
		return ErrClientIdle
	}

	d.mu.Lock()
	if d.inflight[ch.ID] && !isRetry {
		d.mu.Unlock()
		return nil
	}
	d.inflight[ch.ID] = true
	d.mu.Unlock()

	cycleID := uuid.NewString()[:8]
	params := d.buildParams(ch, wantOlder)

	records, err := d.transport.FetchMessages(ctx, params)
	if err != nil {
		if errors.Is(err, repo.ErrMalformedResponse) {
			d.malformed.Add(1)
			d.clearInflight(ch.ID)
			fmt.Printf("[Sync] %s: malformed response for channel %s, skipping merge\n", cycleID, ch.ID)
			return nil
		}
		if !isRetry {
			fmt.Printf("[Sync] %s: request failed for channel %s, retrying: %v\n", cycleID, ch.ID, err)
			return d.RequestChannel(ctx, channelID, wantOlder, true)
		}
		d.clearInflight(ch.ID)
		fmt.Printf("[Sync] %s: retry failed for channel %s: %v\n", cycleID, ch.ID, err)
		return fmt.Errorf("fetch channel %s: %w", ch.ID, err)
	}
	d.clearInflight(ch.ID)

	accepted := d.merger.Merge(ch.ID, records, wantOlder, params.AscendingTimestampOrder)

	// A no-op poll skips the DOM work entirely, unless the display was
	// flagged for a forced clear after a viewport reset.
	if len(records) > 0 || d.target.NeedsClearing(ch.ID) {
		d.renderer.Render(ch.ID, wantOlder)
	}

	if d.observer != nil {
		d.observer.AfterSync(&SyncEvent{
			Channel:  ch,
			Response: records,
			Accepted: accepted,
			State:    d.store.Get(ch.ID),
		})
	}
	return nil
}

// buildParams shapes the fetch parameters from the viewport and the channel
// watermarks.
func (d *SyncDriver) buildParams(ch domain.Channel, wantOlder bool) domain.FetchParams {
	bounds := d.viewport()
	params := domain.FetchParams{
		MinLatE6:       roundE6(bounds.MinLat),
		MinLngE6:       roundE6(bounds.MinLng),
		MaxLatE6:       roundE6(bounds.MaxLat),
		MaxLngE6:       roundE6(bounds.MaxLng),
		MinTimestampMs: domain.TimestampUnset,
		MaxTimestampMs: domain.TimestampUnset,
		Tab:            ch.ID,
	}

	state := d.store.Get(ch.ID)
	if state == nil {
		return params
	}

	if wantOlder {
		// Page strictly before the oldest watermark; the server returns
		// newest-first within the older window.
		params.MaxTimestampMs = state.OldestTimestamp
		params.PlextContinuationGUID = state.OldestGUID
		return params
	}

	if state.NewestTimestamp != domain.TimestampUnset {
		// Walk forward from the last known point in ascending order so a
		// long idle gap is filled oldest-first instead of leaving a hole.
		params.MinTimestampMs = state.NewestTimestamp
		params.PlextContinuationGUID = state.NewestGUID
		params.AscendingTimestampOrder = true
	}
	return params
}

func (d *SyncDriver) clearInflight(channelID string) {
	d.mu.Lock()
	delete(d.inflight, channelID)
	d.mu.Unlock()
}

// roundE6 converts degrees to E6 fixed point at 1e-6 precision.
func roundE6(deg float64) int64 {
	return int64(math.Round(deg * 1e6))
}

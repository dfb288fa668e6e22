package usecase

import (
	"sync"
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// dividerDayFormat is the day label used on date dividers.
const dividerDayFormat = "2006-01-02"

// Renderer converts channel states into display sequences and keeps the
// scroll position continuous across re-renders.
type Renderer struct {
	store  *domain.Store
	target repo.RenderTarget

	mu            sync.Mutex
	renderedOnce  map[string]bool
	pendingBottom map[string]bool
}

// NewRenderer creates a new renderer
func NewRenderer(store *domain.Store, target repo.RenderTarget) *Renderer {
	return &Renderer{
		store:         store,
		target:        target,
		renderedOnce:  make(map[string]bool),
		pendingBottom: make(map[string]bool),
	}
}

// BuildDisplayList produces the flat display sequence for a channel state.
// The order list is authoritative; rows are never re-sorted by timestamp.
// A date divider precedes every calendar-day change between consecutive
// messages.
func BuildDisplayList(state *domain.ChannelState) []domain.DisplayRow {
	if state == nil {
		return nil
	}

	rows := make([]domain.DisplayRow, 0, len(state.Order))
	prevDay := ""
	for _, guid := range state.Order {
		stored, ok := state.Messages[guid]
		if !ok {
			continue
		}
		day := time.UnixMilli(stored.Timestamp).Format(dividerDayFormat)
		if prevDay != "" && day != prevDay {
			rows = append(rows, domain.DisplayRow{
				Kind:      domain.RowDateDivider,
				Timestamp: stored.Timestamp,
				Text:      day,
			})
		}
		prevDay = day
		rows = append(rows, domain.DisplayRow{
			Kind:      domain.RowMessage,
			GUID:      guid,
			Timestamp: stored.Timestamp,
			Text:      stored.Rendered,
		})
	}
	return rows
}

// Render replaces a channel's container content and applies the scroll
// continuity rules. fromOlder marks renders triggered by an older-messages
// fetch, whose prepended content must not shift what the user is reading.
func (r *Renderer) Render(channelID string, fromOlder bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := BuildDisplayList(r.store.Get(channelID))

	prevHeight := r.target.ContentHeight(channelID)
	prevOffset := r.target.ScrollOffset(channelID)
	wasAtBottom := r.target.AtBottom(channelID)
	firstRender := !r.renderedOnce[channelID]

	r.target.Replace(channelID, rows)
	r.target.SetNeedsClearing(channelID, false)
	r.renderedOnce[channelID] = true

	switch {
	case firstRender:
		r.target.SetIgnoreNextScroll(channelID, true)
		r.target.SetScrollOffset(channelID, repo.ScrollBottom)

	case !r.target.Visible(channelID) && !fromOlder:
		// Apply once the container is shown again.
		r.pendingBottom[channelID] = true

	case wasAtBottom || fromOlder:
		delta := r.target.ContentHeight(channelID) - prevHeight
		r.target.SetIgnoreNextScroll(channelID, true)
		r.target.SetScrollOffset(channelID, prevOffset+delta)

	default:
		// New trailing content must not yank the user away from what they
		// are reading higher up.
	}
}

// OnShown applies a deferred scroll-to-bottom when a hidden container
// becomes visible.
func (r *Renderer) OnShown(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.pendingBottom[channelID] {
		return
	}
	delete(r.pendingBottom, channelID)
	r.target.SetIgnoreNextScroll(channelID, true)
	r.target.SetScrollOffset(channelID, repo.ScrollBottom)
}

// Invalidate forgets the first-render marker for a channel so the next
// render scrolls to the bottom again. Called after a channel state reset.
func (r *Renderer) Invalidate(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.renderedOnce, channelID)
	delete(r.pendingBottom, channelID)
}

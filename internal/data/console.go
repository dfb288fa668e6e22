package data

import (
	"fmt"
	"sync"
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// container is the per-channel display state of the console target
type container struct {
	rows             []domain.DisplayRow
	offset           int
	visible          bool
	needsClearing    bool
	ignoreNextScroll bool
	seen             map[string]bool
}

// ConsoleTarget is a headless render target that prints new message rows of
// visible channels to stdout. Heights are measured in rows.
type ConsoleTarget struct {
	mu         sync.Mutex
	containers map[string]*container
}

// NewConsoleTarget creates a new console target
func NewConsoleTarget() *ConsoleTarget {
	return &ConsoleTarget{containers: make(map[string]*container)}
}

func (t *ConsoleTarget) get(channelID string) *container {
	c, ok := t.containers[channelID]
	if !ok {
		c = &container{seen: make(map[string]bool)}
		t.containers[channelID] = c
	}
	return c
}

// SetVisible shows or hides a channel's container
func (t *ConsoleTarget) SetVisible(channelID string, v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(channelID).visible = v
}

// Replace swaps the container content and prints rows not seen before
func (t *ConsoleTarget) Replace(channelID string, rows []domain.DisplayRow) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.get(channelID)
	if c.needsClearing {
		c.seen = make(map[string]bool)
	}
	c.rows = rows
	c.needsClearing = false

	if !c.visible {
		return
	}
	for _, row := range rows {
		if row.Kind != domain.RowMessage || c.seen[row.GUID] {
			continue
		}
		c.seen[row.GUID] = true
		ts := time.UnixMilli(row.Timestamp).Format("15:04")
		fmt.Printf("[%s] %s %s\n", channelID, ts, row.Text)
	}
}

// ContentHeight returns the row count of the container
func (t *ConsoleTarget) ContentHeight(channelID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.get(channelID).rows)
}

// ScrollOffset returns the current scroll offset
func (t *ConsoleTarget) ScrollOffset(channelID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(channelID).offset
}

// SetScrollOffset moves the scroll position, clamping the bottom sentinel
func (t *ConsoleTarget) SetScrollOffset(channelID string, offset int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.get(channelID)
	if offset == repo.ScrollBottom || offset > len(c.rows) {
		offset = len(c.rows)
	}
	if offset < 0 {
		offset = 0
	}
	c.offset = offset
}

// AtBottom reports whether the container is scrolled to the very bottom
func (t *ConsoleTarget) AtBottom(channelID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.get(channelID)
	return c.offset >= len(c.rows)
}

// Visible reports whether the container is shown
func (t *ConsoleTarget) Visible(channelID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(channelID).visible
}

// NeedsClearing reports the forced-clear flag
func (t *ConsoleTarget) NeedsClearing(channelID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(channelID).needsClearing
}

// SetNeedsClearing sets or clears the forced-clear flag
func (t *ConsoleTarget) SetNeedsClearing(channelID string, v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(channelID).needsClearing = v
}

// SetIgnoreNextScroll marks the next scroll event as programmatic
func (t *ConsoleTarget) SetIgnoreNextScroll(channelID string, v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(channelID).ignoreNextScroll = v
}

// ConsumeIgnoreNextScroll reads and clears the programmatic-scroll flag.
// Scroll handlers call this to skip events the renderer generated itself.
func (t *ConsoleTarget) ConsumeIgnoreNextScroll(channelID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.get(channelID)
	v := c.ignoreNextScroll
	c.ignoreNextScroll = false
	return v
}

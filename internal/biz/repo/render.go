package repo

import "github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"

// ScrollBottom is the sentinel offset meaning "maximum scroll", i.e. pinned
// to the newest content. Targets clamp it to their actual content height.
const ScrollBottom = int(^uint32(0) >> 1)

// RenderTarget is the addressable display container interface, one container
// per channel. The core writes replacement display sequences and tracks a
// numeric scroll offset plus side-channel flags on each container.
type RenderTarget interface {
	// Replace swaps the container content for the given rows and clears the
	// needs-clearing flag.
	Replace(channelID string, rows []domain.DisplayRow)

	// ContentHeight returns the current content height of the container.
	ContentHeight(channelID string) int

	// ScrollOffset returns the current scroll offset from the top.
	ScrollOffset(channelID string) int

	// SetScrollOffset moves the scroll position. ScrollBottom pins to the end.
	SetScrollOffset(channelID string, offset int)

	// AtBottom reports whether the container is scrolled to the very bottom.
	AtBottom(channelID string) bool

	// Visible reports whether the container is currently shown.
	Visible(channelID string) bool

	// NeedsClearing reports the forced-clear flag set after a viewport reset.
	NeedsClearing(channelID string) bool

	// SetNeedsClearing sets or clears the forced-clear flag.
	SetNeedsClearing(channelID string, v bool)

	// SetIgnoreNextScroll marks the next scroll event as programmatic so the
	// host's scroll handler does not mistake it for user input.
	SetIgnoreNextScroll(channelID string, v bool)
}

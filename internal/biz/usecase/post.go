package usecase

import (
	"context"
	"fmt"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// PostError carries the original message text of a failed post so the user
// can retry or copy it. Posts are never retried automatically.
type PostError struct {
	ChannelID string
	Text      string
	Err       error
}

func (e *PostError) Error() string {
	return fmt.Sprintf("post to %s failed: %v", e.ChannelID, e.Err)
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Poster sends chat messages for post-capable channels
type Poster struct {
	registry  *domain.Registry
	transport repo.Transport
	location  func() (lat, lng float64)
}

// NewPoster creates a new poster. location provides the player position
// attached to outbound messages.
func NewPoster(registry *domain.Registry, transport repo.Transport, location func() (lat, lng float64)) *Poster {
	return &Poster{
		registry:  registry,
		transport: transport,
		location:  location,
	}
}

// Send posts a message to a channel
func (p *Poster) Send(ctx context.Context, channelID, text string) error {
	ch, _ := p.registry.Resolve(channelID)
	if !ch.CanPost {
		return &PostError{
			ChannelID: ch.ID,
			Text:      text,
			Err:       fmt.Errorf("channel %s does not accept messages", ch.ID),
		}
	}

	lat, lng := p.location()
	params := domain.PostParams{
		Message: text,
		LatE6:   roundE6(lat),
		LngE6:   roundE6(lng),
		Tab:     ch.ID,
	}

	if err := p.transport.PostMessage(ctx, params); err != nil {
		return &PostError{ChannelID: ch.ID, Text: text, Err: err}
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// record builds a minimal player-generated raw record for tests
func record(guid string, ts int64) domain.RawRecord {
	return domain.RawRecord{
		GUID:        guid,
		TimestampMs: ts,
		Plext: domain.Plext{
			Text:       "msg " + guid,
			Team:       "RESISTANCE",
			PlextType:  domain.KindPlayerGenerated,
			Categories: domain.CategoryPublic,
			Markup: []domain.MarkupEntity{
				{Type: "SENDER", Data: domain.MarkupData{Plain: "agent: ", Team: "RESISTANCE"}},
				{Type: "TEXT", Data: domain.MarkupData{Plain: "msg " + guid}},
			},
		},
	}
}

// fakeTarget is an in-memory render target for tests
type fakeTarget struct {
	rows          map[string][]domain.DisplayRow
	offsets       map[string]int
	visible       map[string]bool
	atBottom      map[string]bool
	needsClearing map[string]bool
	ignoreScroll  map[string]bool
	replaceCalls  int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		rows:          make(map[string][]domain.DisplayRow),
		offsets:       make(map[string]int),
		visible:       make(map[string]bool),
		atBottom:      make(map[string]bool),
		needsClearing: make(map[string]bool),
		ignoreScroll:  make(map[string]bool),
	}
}

func (t *fakeTarget) Replace(channelID string, rows []domain.DisplayRow) {
	t.rows[channelID] = rows
	t.replaceCalls++
}

func (t *fakeTarget) ContentHeight(channelID string) int { return len(t.rows[channelID]) }
func (t *fakeTarget) ScrollOffset(channelID string) int  { return t.offsets[channelID] }

func (t *fakeTarget) SetScrollOffset(channelID string, offset int) {
	if offset == repo.ScrollBottom {
		offset = len(t.rows[channelID])
	}
	t.offsets[channelID] = offset
}

func (t *fakeTarget) AtBottom(channelID string) bool { return t.atBottom[channelID] }
func (t *fakeTarget) Visible(channelID string) bool  { return t.visible[channelID] }

func (t *fakeTarget) NeedsClearing(channelID string) bool { return t.needsClearing[channelID] }
func (t *fakeTarget) SetNeedsClearing(channelID string, v bool) {
	t.needsClearing[channelID] = v
}
func (t *fakeTarget) SetIgnoreNextScroll(channelID string, v bool) {
	t.ignoreScroll[channelID] = v
}

// fakeTransport scripts fetch outcomes for tests
type fakeTransport struct {
	fetches   []domain.FetchParams
	posts     []domain.PostParams
	responses []fetchOutcome
	postErr   error
}

type fetchOutcome struct {
	records []domain.RawRecord
	err     error
}

func (t *fakeTransport) FetchMessages(_ context.Context, params domain.FetchParams) ([]domain.RawRecord, error) {
	t.fetches = append(t.fetches, params)
	if len(t.responses) == 0 {
		return nil, fmt.Errorf("no scripted response")
	}
	outcome := t.responses[0]
	t.responses = t.responses[1:]
	return outcome.records, outcome.err
}

func (t *fakeTransport) PostMessage(_ context.Context, params domain.PostParams) error {
	t.posts = append(t.posts, params)
	return t.postErr
}

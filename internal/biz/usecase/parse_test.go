package usecase

import (
	"testing"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

func TestParseMessage_Categories(t *testing.T) {
	rec := record("g1", 100)
	rec.Plext.Categories = domain.CategoryPublic | domain.CategoryAlert

	msg := ParseMessage(rec)

	if !msg.Public || msg.Secure || !msg.Alert {
		t.Errorf("Unexpected category decode: public=%v secure=%v alert=%v", msg.Public, msg.Secure, msg.Alert)
	}
	if !msg.MsgToPlayer {
		t.Error("Expected alert+public to target the player")
	}
}

func TestParseMessage_AlertAloneIsNotToPlayer(t *testing.T) {
	rec := record("g1", 100)
	rec.Plext.Categories = domain.CategoryAlert

	msg := ParseMessage(rec)
	if msg.MsgToPlayer {
		t.Error("Expected bare alert not to target the player")
	}
}

func TestParseMessage_SenderFromSenderEntity(t *testing.T) {
	msg := ParseMessage(record("g1", 100))

	if msg.Sender.Name != "agent" {
		t.Errorf("Expected trailing ': ' stripped, got %q", msg.Sender.Name)
	}
	if msg.Sender.Team != "RESISTANCE" {
		t.Errorf("Expected sender team RESISTANCE, got %q", msg.Sender.Team)
	}
}

func TestParseMessage_SenderFromPlayerEntity(t *testing.T) {
	rec := record("g1", 100)
	rec.Plext.PlextType = domain.KindSystemBroadcast
	rec.Plext.Markup = []domain.MarkupEntity{
		{Type: "PLAYER", Data: domain.MarkupData{Plain: "agent", Team: "ENLIGHTENED"}},
		{Type: "TEXT", Data: domain.MarkupData{Plain: " captured a portal"}},
	}

	msg := ParseMessage(rec)
	if msg.Sender.Name != "agent" || msg.Sender.Team != "ENLIGHTENED" {
		t.Errorf("Unexpected sender: %+v", msg.Sender)
	}
}

func TestParseMessage_Automated(t *testing.T) {
	player := record("g1", 100)
	if ParseMessage(player).Automated {
		t.Error("Expected player generated message not to be automated")
	}

	system := record("g2", 200)
	system.Plext.PlextType = domain.KindSystemBroadcast
	if !ParseMessage(system).Automated {
		t.Error("Expected system message to be automated")
	}

	narrowcast := record("g3", 300)
	narrowcast.Plext.PlextType = domain.KindSystemNarrowcast
	parsed := ParseMessage(narrowcast)
	if !parsed.Automated || !parsed.Narrowcast {
		t.Errorf("Expected narrowcast automated message, got %+v", parsed)
	}
}

func TestRenderContent(t *testing.T) {
	rec := record("g1", 100)
	rec.Plext.Markup = []domain.MarkupEntity{
		{Type: "SENDER", Data: domain.MarkupData{Plain: "agent: "}},
		{Type: "TEXT", Data: domain.MarkupData{Plain: "see "}},
		{Type: "PORTAL", Data: domain.MarkupData{Name: "Fountain", Plain: "Fountain (1 Main St)"}},
	}

	got := RenderContent(ParseMessage(rec))
	if got != "agent: see Fountain" {
		t.Errorf("Unexpected rendered content: %q", got)
	}
}

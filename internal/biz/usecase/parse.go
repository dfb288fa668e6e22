package usecase

import (
	"strings"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

// ParseMessage converts a raw record into a parsed message entity
func ParseMessage(rec domain.RawRecord) domain.Message {
	plext := rec.Plext

	msg := domain.Message{
		GUID:       rec.GUID,
		Timestamp:  rec.TimestampMs,
		Public:     plext.Categories&domain.CategoryPublic != 0,
		Secure:     plext.Categories&domain.CategorySecure != 0,
		Alert:      plext.Categories&domain.CategoryAlert != 0,
		Kind:       plext.PlextType,
		Narrowcast: plext.PlextType == domain.KindSystemNarrowcast,
		Automated:  plext.PlextType != domain.KindPlayerGenerated,
		Team:       plext.Team,
		Markup:     plext.Markup,
	}
	msg.MsgToPlayer = msg.Alert && (msg.Public || msg.Secure)

	// Sender comes from the first SENDER or PLAYER entity in the markup.
	for _, ent := range plext.Markup {
		switch ent.Type {
		case "SENDER":
			// Sender entities carry a trailing ": " separator.
			msg.Sender = domain.Sender{
				Name: strings.TrimSuffix(ent.Data.Plain, ": "),
				Team: ent.Data.Team,
			}
		case "PLAYER":
			msg.Sender = domain.Sender{
				Name: ent.Data.Plain,
				Team: ent.Data.Team,
			}
		default:
			continue
		}
		break
	}

	return msg
}

// RenderContent produces the display form of a parsed message
func RenderContent(msg domain.Message) string {
	var sb strings.Builder
	for _, ent := range msg.Markup {
		switch ent.Type {
		case "TEXT", "SENDER", "PLAYER", "SECURE":
			sb.WriteString(ent.Data.Plain)
		case "PORTAL", "AT_PLAYER":
			if ent.Data.Name != "" {
				sb.WriteString(ent.Data.Name)
			} else {
				sb.WriteString(ent.Data.Plain)
			}
		default:
			sb.WriteString(ent.Data.Plain)
		}
	}
	return sb.String()
}

package domain

// RowKind distinguishes display row types
type RowKind int

// Display row kinds.
const (
	RowMessage RowKind = iota
	RowDateDivider
)

// DisplayRow is one entry of the flat display sequence produced for a
// channel's container.
type DisplayRow struct {
	Kind      RowKind
	GUID      string // empty for dividers
	Timestamp int64
	Text      string // rendered content, or the divider's day label
}

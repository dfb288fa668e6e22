package domain

// Bounds is a geographic bounding box in degrees
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// Pad grows the box by a fraction of its own size on every side
func (b Bounds) Pad(fraction float64) Bounds {
	latPad := (b.MaxLat - b.MinLat) * fraction
	lngPad := (b.MaxLng - b.MinLng) * fraction
	return Bounds{
		MinLat: b.MinLat - latPad,
		MinLng: b.MinLng - lngPad,
		MaxLat: b.MaxLat + latPad,
		MaxLng: b.MaxLng + lngPad,
	}
}

// Contains reports whether the other box lies fully inside this one
func (b Bounds) Contains(other Bounds) bool {
	return other.MinLat >= b.MinLat && other.MaxLat <= b.MaxLat &&
		other.MinLng >= b.MinLng && other.MaxLng <= b.MaxLng
}

// CloseTo reports whether two boxes are interchangeable for sync purposes:
// each box, padded by the given fraction, must contain the other.
func (b Bounds) CloseTo(other Bounds, fraction float64) bool {
	return b.Pad(fraction).Contains(other) && other.Pad(fraction).Contains(b)
}

// FetchParams are the request parameters for one message fetch
type FetchParams struct {
	MinLatE6                int64  `json:"minLatE6"`
	MinLngE6                int64  `json:"minLngE6"`
	MaxLatE6                int64  `json:"maxLatE6"`
	MaxLngE6                int64  `json:"maxLngE6"`
	MinTimestampMs          int64  `json:"minTimestampMs"`
	MaxTimestampMs          int64  `json:"maxTimestampMs"`
	Tab                     string `json:"tab"`
	PlextContinuationGUID   string `json:"plextContinuationGuid,omitempty"`
	AscendingTimestampOrder bool   `json:"ascendingTimestampOrder,omitempty"`
}

// PostParams are the request parameters for sending a message
type PostParams struct {
	Message string `json:"message"`
	LatE6   int64  `json:"latE6"`
	LngE6   int64  `json:"lngE6"`
	Tab     string `json:"tab"`
}

package entity

// Recommendation is derived on every request and never stored.
type Recommendation struct {
	Colors []string
	Styles []string
	Tips   []string // Undertone tip first, then body-shape tip, then face-shape tip.
}

// EmptyRecommendation has non-nil empty slices so it serializes as [] rather than null.
func EmptyRecommendation() Recommendation {
	return Recommendation{
		Colors: []string{},
		Styles: []string{},
		Tips:   []string{},
	}
}

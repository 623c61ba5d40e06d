package ski

// Slope is the straight ground line the skier rides on. Screen y grows
// downward, so a positive grade makes the hill fall away to the right.
type Slope struct {
	BaseGroundY float64 // ground height at CenterX
	CenterX     float64
	Grade       float64 // rise over run
}

// GroundHeightAt returns the ground's screen y at horizontal position x.
func (s Slope) GroundHeightAt(x float64) float64 {
	return s.BaseGroundY - (s.CenterX-x)*s.Grade
}

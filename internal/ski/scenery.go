package ski

import (
	"math"
	"math/rand"
)

// Parallax and wrap parameters for the background, in design pixels.
const (
	mountainParallax = 0.3
	mountainWrapPad  = 400
	treeWrapPad      = 600
	sceneryLift      = 50 // background sits this far above the track
)

// Mountain is a background peak in design coordinates.
type Mountain struct {
	X, Width, Height float64
}

// Tree is a roadside fir in design coordinates.
type Tree struct {
	X, Size float64
	Layers  int
	Snowy   bool
}

var baseMountains = []Mountain{
	{X: 0, Width: 200, Height: 120},
	{X: 250, Width: 180, Height: 100},
	{X: 500, Width: 220, Height: 140},
	{X: 750, Width: 190, Height: 110},
	{X: 1000, Width: 210, Height: 130},
	{X: 1300, Width: 185, Height: 105},
}

var baseTrees = []Tree{
	{X: 100, Size: 40},
	{X: 300, Size: 50},
	{X: 500, Size: 35},
	{X: 700, Size: 45},
	{X: 900, Size: 40},
	{X: 1100, Size: 55},
	{X: 1300, Size: 42},
	{X: 1500, Size: 48},
	{X: 1700, Size: 38},
	{X: 1900, Size: 52},
}

// Scenery is the decorative background of one world.
type Scenery struct {
	Mountains []Mountain
	Trees     []Tree
}

// NewScenery copies the base layout and decorates it with rng.
func NewScenery(rng *rand.Rand) Scenery {
	s := Scenery{
		Mountains: append([]Mountain(nil), baseMountains...),
		Trees:     append([]Tree(nil), baseTrees...),
	}
	for i := range s.Trees {
		s.Trees[i].Layers = 2 + rng.Intn(2)
		s.Trees[i].Snowy = rng.Intn(3) == 0
	}
	return s
}

// PlacedMountain is a mountain in screen space.
type PlacedMountain struct {
	X, Width, Height, BaseY float64
}

// PlacedTree is a tree in screen space.
type PlacedTree struct {
	X, Size, BaseY float64
	Layers         int
	Snowy          bool
}

// wrapX maps a scrolled position into the window (viewW - wrap, viewW].
func wrapX(x, offset, width, wrap, viewW float64) float64 {
	wx := math.Mod(x-offset, wrap)
	if wx < -width {
		wx += wrap
	}
	if wx > viewW {
		wx -= wrap
	}
	return wx
}

// PlaceMountains positions the mountains for a scroll offset.
func (s Scenery) PlaceMountains(offset float64, m Metrics) []PlacedMountain {
	wrap := m.ViewW + mountainWrapPad*m.Scale
	baseY := m.GroundY - sceneryLift*m.Scale
	out := make([]PlacedMountain, 0, len(s.Mountains))
	for _, mt := range s.Mountains {
		w := mt.Width * m.Scale
		out = append(out, PlacedMountain{
			X:      wrapX(mt.X*m.Scale, offset*mountainParallax, w, wrap, m.ViewW),
			Width:  w,
			Height: mt.Height * m.Scale,
			BaseY:  baseY,
		})
	}
	return out
}

// PlaceTrees positions the trees for a scroll offset. Trees follow the slope.
func (s Scenery) PlaceTrees(offset float64, m Metrics, slope Slope) []PlacedTree {
	wrap := m.ViewW + treeWrapPad*m.Scale
	out := make([]PlacedTree, 0, len(s.Trees))
	for _, t := range s.Trees {
		size := t.Size * m.Scale
		x := wrapX(t.X*m.Scale, offset, size, wrap, m.ViewW)
		out = append(out, PlacedTree{
			X:      x,
			Size:   size,
			BaseY:  slope.GroundHeightAt(x+size/2) - sceneryLift*m.Scale,
			Layers: t.Layers,
			Snowy:  t.Snowy,
		})
	}
	return out
}

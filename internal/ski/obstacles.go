package ski

import (
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// ImageSource resolves sprite handles by name.
type ImageSource interface {
	Image(name string) *assets.Image
}

// Obstacle is a single object on the slope. X is the horizontal center.
type Obstacle struct {
	Kind     string
	X        float64
	Size     float64
	Rotation int
	Image    *assets.Image
}

// Dimensions returns the aspect-preserving width and height that fit inside
// Size. Quarter-turn rotations swap the image's aspect.
func (o Obstacle) Dimensions() (w, h float64) {
	aspect := o.Image.Aspect()
	if o.Rotation%180 != 0 {
		aspect = 1 / aspect
	}
	if aspect >= 1 {
		return o.Size, o.Size / aspect
	}
	return o.Size * aspect, o.Size
}

// Hitbox returns the rectangle centered on X and resting on the slope.
func (o Obstacle) Hitbox(s Slope) core.RectF {
	w, h := o.Dimensions()
	ground := s.GroundHeightAt(o.X)
	return core.RectF{
		Left:   o.X - w/2,
		Top:    ground - h,
		Right:  o.X + w/2,
		Bottom: ground,
	}
}

// Collision is the outcome of testing the player against one obstacle.
type Collision int

const (
	CollisionNone    Collision = iota // no overlap
	CollisionCleared                  // overlap inside the clearance band
	CollisionHit                      // crash
)

// Collide tests a player hitbox against an obstacle hitbox. A player whose
// bottom is within the top clearance fraction of the obstacle is cleared.
func Collide(player, obstacle core.RectF, clearance float64) Collision {
	if !player.Overlaps(obstacle) {
		return CollisionNone
	}
	if player.Bottom <= obstacle.Top+clearance*obstacle.Height() {
		return CollisionCleared
	}
	return CollisionHit
}

// Spawner decides when and what to spawn. Spacing is measured in distance
// units (meters) travelled since the previous spawn.
type Spawner struct {
	catalog     []config.ObstacleType
	images      ImageSource
	minSpacing  float64
	maxSpacing  float64
	nextSpawnAt float64
	spawned     int
	rng         *rand.Rand
}

// NewSpawner creates a spawner drawing from catalog with rng.
func NewSpawner(cfg *config.SkiObstacles, images ImageSource, rng *rand.Rand) *Spawner {
	return &Spawner{
		catalog:    cfg.Catalog,
		images:     images,
		minSpacing: cfg.MinSpacing,
		maxSpacing: cfg.MaxSpacing,
		rng:        rng,
	}
}

// Reset schedules the first spawn relative to distance.
func (s *Spawner) Reset(distance float64) {
	s.spawned = 0
	s.schedule(distance, s.maxSpacing)
}

func (s *Spawner) schedule(distance, maxSpacing float64) {
	if maxSpacing < s.minSpacing {
		maxSpacing = s.minSpacing
	}
	gap := s.minSpacing
	if maxSpacing > s.minSpacing {
		gap += s.rng.Float64() * (maxSpacing - s.minSpacing)
	}
	s.nextSpawnAt = distance + gap
}

// NextSpawnAt returns the distance at which the next obstacle appears.
func (s *Spawner) NextSpawnAt() float64 {
	return s.nextSpawnAt
}

// Spawned returns how many obstacles were produced since the last reset.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Next returns a new obstacle when distance has crossed the threshold. At
// most one obstacle is produced per call. maxSpacing overrides the
// configured upper bound for the following gap.
func (s *Spawner) Next(distance, maxSpacing float64, m Metrics) (Obstacle, bool) {
	if len(s.catalog) == 0 || distance < s.nextSpawnAt {
		return Obstacle{}, false
	}

	kind := s.catalog[s.rng.Intn(len(s.catalog))]
	size := m.ObstacleBase * kind.SizeMultiplier

	var img *assets.Image
	if s.images != nil {
		img = s.images.Image(kind.Image)
	}

	s.spawned++
	s.schedule(distance, maxSpacing)

	return Obstacle{
		Kind:     kind.Name,
		X:        m.ViewW + size,
		Size:     size,
		Rotation: kind.Rotation,
		Image:    img,
	}, true
}

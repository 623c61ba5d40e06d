// Package ski implements the side-scrolling ski run: a skier rides down a
// constant-grade slope, jumps obstacles, boosts on a double tap and either
// reaches the present at the end of the course or skis on endlessly.
//
// The package is pure game logic. World holds the state, Update advances it
// one fixed tick and Render draws a Snapshot into a core.Screen.
package ski

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
)

// Registered game IDs.
const (
	PresentID = "ski"
	EndlessID = "ski_endless"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config's).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// sprites is loaded once per process and shared by every session.
var sprites = sync.OnceValue(func() *assets.Loader {
	l := assets.Embedded()
	if err := l.LoadAll(context.Background()); err != nil {
		log.Warn("sprites unavailable", "err", err)
	}
	return l
})

// Game implements registry.Game on top of a World.
type Game struct {
	mode      Mode
	world     *World
	runtime   core.RuntimeConfig
	images    ImageSource
	best      float64 // best endless distance in this process
	lastPhase Phase
	logger    *log.Logger
}

// New creates a game for mode.
func New(mode Mode) *Game {
	return &Game{
		mode:   mode,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes the game's debug logs to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(g.ID())
	}
}

// SetImages overrides the sprite source. Must be called before Reset.
func (g *Game) SetImages(src ImageSource) {
	g.images = src
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return PresentID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Ski Run: Endless"
	}
	return "Ski Run: Present"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Much to lose, nothing to win"
	}
	return "Much to win, nothing to lose"
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSki(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
	}
	config.ApplySkiPreset(&cfg, difficultyPreset)

	if g.images == nil {
		g.images = sprites()
	}

	g.world = NewWorld(cfg, Options{
		Mode:     g.mode,
		ViewW:    float64(runtime.ScreenW * core.CellPixelsX),
		ViewH:    float64(runtime.ScreenH * core.CellPixelsY),
		TickRate: runtime.TickRate,
		Seed:     runtime.Seed,
		Images:   g.images,
	})
	g.lastPhase = PhasePlaying
	g.logger.Debug("run started", "mode", g.mode, "seed", runtime.Seed,
		"w", runtime.ScreenW, "h", runtime.ScreenH)
}

// Resize adapts the running world to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.world == nil {
		return
	}
	g.world.Resize(float64(w*core.CellPixelsX), float64(h*core.CellPixelsY))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := Update(g.world, in)

	for _, ev := range events {
		if ev == core.EventBoost {
			g.logger.Debug("boost", "tick", g.world.Tick(), "distance", int(g.world.Distance()))
		}
	}

	if phase := g.world.Phase(); phase != g.lastPhase {
		switch {
		case phase == PhasePlaying:
			g.logger.Debug("run restarted")
		case g.mode == ModeEndless && g.world.Distance() > g.best:
			g.best = g.world.Distance()
			g.logger.Debug("new best", "distance", int(g.best))
		}
		g.logger.Debug("phase", "from", g.lastPhase, "to", phase, "distance", int(g.world.Distance()))
		g.lastPhase = phase
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(g.world.Snapshot(), dst, RenderOptions{Best: g.best})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.world.Phase()
	return core.GameState{
		Score:    int(g.world.Distance()),
		GameOver: phase == PhaseGameOver,
		Won:      phase == PhaseWon,
		Paused:   g.world.Paused(),
	}
}

// SetBest seeds the best endless distance, e.g. from the score board.
func (g *Game) SetBest(meters float64) {
	g.best = max(g.best, meters)
}

// Best returns the best endless distance reached by this instance.
func (g *Game) Best() float64 {
	return g.best
}

// World exposes the underlying world for tools and tests.
func (g *Game) World() *World {
	return g.world
}

// Register the game modes with the registry
func init() {
	registry.Register(PresentID, func() registry.Game {
		return New(ModePresent)
	})
	registry.Register(EndlessID, func() registry.Game {
		return New(ModeEndless)
	})
}

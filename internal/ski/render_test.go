package ski

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

func loadedSprites(t *testing.T) *assets.Loader {
	t.Helper()
	l := assets.Embedded()
	if err := l.LoadAll(t.Context()); err != nil {
		t.Fatal(err)
	}
	l.Wait()
	if err := l.Err(); err != nil {
		t.Fatal(err)
	}
	return l
}

func newScreenWorld(mode Mode, images ImageSource) *World {
	cfg := config.DefaultSkiConfig()
	cfg.Obstacles.Catalog = nil
	return NewWorld(cfg, Options{
		Mode:     mode,
		ViewW:    80 * core.CellPixelsX,
		ViewH:    24 * core.CellPixelsY,
		TickRate: 60,
		Seed:     1,
		Images:   images,
	})
}

func TestRenderDrawsSkierWhenLoaded(t *testing.T) {
	w := newScreenWorld(ModePresent, loadedSprites(t))
	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{})

	out := scr.String()
	if !strings.Contains(out, "▚") {
		t.Errorf("skier not drawn:\n%s", out)
	}
	if !strings.Contains(scr.Row(0), DefaultTexts.ProgressLabel) {
		t.Errorf("progress label missing from HUD: %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), DefaultTexts.BoostReady) {
		t.Errorf("boost meter missing from HUD: %q", scr.Row(0))
	}
}

func TestRenderSkipsUnloadedImages(t *testing.T) {
	w := newScreenWorld(ModePresent, assets.StaticSet{})
	w.obstacles = []Obstacle{{Kind: "rock", X: 600, Size: 48, Image: w.images.Image("rock")}}
	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{})

	if strings.Contains(scr.String(), "▚") {
		t.Error("unloaded skier should not be drawn")
	}
}

func TestRenderEndlessHUD(t *testing.T) {
	w := newScreenWorld(ModeEndless, nil)
	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{Best: 1234})

	if !strings.Contains(scr.Row(0), "Best: 1234m") {
		t.Errorf("best distance missing: %q", scr.Row(0))
	}
}

func TestRenderGameOverStaging(t *testing.T) {
	w := newScreenWorld(ModePresent, nil)
	crash(t, w)

	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{})
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("title should not show during the shake")
	}

	for range 60 {
		Update(w, idle())
	}
	Render(w.Snapshot(), scr, RenderOptions{})
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("title missing after staging:\n%s", out)
	}
	if strings.Contains(out, DefaultTexts.RestartHint) {
		t.Error("restart hint should still be hidden")
	}

	for range 120 {
		Update(w, idle())
	}
	Render(w.Snapshot(), scr, RenderOptions{})
	if !strings.Contains(scr.String(), DefaultTexts.RestartHint) {
		t.Error("restart hint should be visible once all lines are revealed")
	}
}

func TestRenderPaused(t *testing.T) {
	w := newScreenWorld(ModePresent, nil)
	Update(w, press(core.ActionPause))

	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{})
	if !strings.Contains(scr.String(), DefaultTexts.PausedTitle) {
		t.Error("pause box missing")
	}
}

func TestDrawSpriteScales(t *testing.T) {
	scr := core.NewScreen(10, 4)
	rows := [][]rune{[]rune("ab"), []rune("cd")}
	drawSprite(scr, rows, core.RectF{Left: 0, Top: 0, Right: 40, Bottom: 40}, core.ColorWhite, 0)

	if got := scr.Row(0); got != "aabb      " {
		t.Errorf("row 0 = %q", got)
	}
	if got := scr.Row(1); got != "ccdd      " {
		t.Errorf("row 1 = %q", got)
	}
}

func countColor(scr *core.Screen, c core.Color) int {
	n := 0
	for y := range scr.Height() {
		for x := range scr.Width() {
			if scr.GetCell(x, y).Color == c {
				n++
			}
		}
	}
	return n
}

func TestRenderSkyFlakes(t *testing.T) {
	w := newScreenWorld(ModePresent, nil)
	scr := core.NewScreen(80, 24)
	Render(w.Snapshot(), scr, RenderOptions{})

	if countColor(scr, core.ColorSky) == 0 {
		t.Fatalf("no snowflakes in the sky:\n%s", scr.String())
	}
	ground := cellY(w.slope.GroundHeightAt(colCenter(0)))
	for y := ground; y < scr.Height(); y++ {
		if scr.GetCell(0, y).Color == core.ColorSky {
			t.Errorf("flake drawn over the ground at row %d", y)
		}
	}
}

func TestSkyFlakesFall(t *testing.T) {
	s := Snapshot{}
	before := core.NewScreen(40, 20)
	drawSky(before, s)

	s.Tick = flakeFallTicks
	after := core.NewScreen(40, 20)
	drawSky(after, s)

	for y := range 19 {
		for x := range 40 {
			if before.GetCell(x, y).Color == core.ColorSky && after.GetCell(x, y+1).Color != core.ColorSky {
				t.Fatalf("flake at (%d,%d) did not fall one row", x, y)
			}
		}
	}
}

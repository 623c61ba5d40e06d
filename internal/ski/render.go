package ski

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Scene glyphs.
const (
	MountainChar  = '▒'
	PeakChar      = '▲'
	TrunkChar     = '║'
	NeedleChar    = '▲'
	SnowChar      = '░'
	SurfaceHigh   = '▄'
	SurfaceLow    = '▁'
	ParticleHeavy = '*'
	ParticleLight = '·'
	SkyFlake      = '.'
)

// Controls are shown for the first seconds of a run.
const hintTicks = 300

// Sky snowflakes fall one row per flakeFallTicks and drift one column per
// flakeDriftCells of scroll.
const (
	flakeFallTicks  = 12
	flakeDriftCells = 4
)

// RenderOptions carries what the renderer needs beyond the snapshot.
type RenderOptions struct {
	Texts *Texts
	Best  float64 // best endless distance in meters
}

// Render draws a snapshot onto dst. It never mutates the snapshot and skips
// sprites whose images are not loaded yet.
func Render(s Snapshot, dst *core.Screen, opts RenderOptions) {
	texts := opts.Texts
	if texts == nil {
		texts = &DefaultTexts
	}
	dst.Clear()

	shake := s.Staging.ShakeX
	drawSky(dst, s)
	drawMountains(dst, s, shake)
	drawTrees(dst, s, shake)
	drawGround(dst, s, shake)

	if s.Present.Visible {
		drawImage(dst, s.Present.Image, 0, s.Present.Hitbox(s.Slope), core.ColorRed, shake)
	}
	for _, o := range s.Obstacles {
		drawImage(dst, o.Image, o.Rotation, o.Hitbox(s.Slope), obstacleColor(o.Kind), shake)
	}
	drawParticles(dst, s.Particles, shake)
	drawSkier(dst, s, shake)

	drawHUD(dst, s, texts, opts.Best)

	switch {
	case s.Phase == PhaseGameOver:
		drawGameOver(dst, s, texts)
	case s.Phase == PhaseWon:
		drawOverlay(dst, s.Staging, texts.WinLines, core.ColorBrightYellow)
	case s.Paused:
		drawOverlay(dst, Staging{Fade: 1, LinesVisible: 2}, []string{texts.PausedTitle, texts.PausedHint}, core.ColorWhite)
	case s.MilestoneVisible:
		banner := fmt.Sprintf(texts.MilestoneFormat, s.Milestone) + " " + texts.MilestoneText
		dst.DrawTextCentered(dst.Height()/3, banner, core.ColorBrightYellow)
	}
}

func cellX(px float64) int { return int(math.Floor(px / core.CellPixelsX)) }
func cellY(py float64) int { return int(math.Floor(py / core.CellPixelsY)) }

// colCenter returns the virtual x at the middle of column c.
func colCenter(c int) float64 { return (float64(c) + 0.5) * core.CellPixelsX }

func obstacleColor(kind string) core.Color {
	switch kind {
	case "rock":
		return core.ColorGray
	case "stump":
		return core.ColorBrown
	case "snowman":
		return core.ColorBrightWhite
	case "sled":
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// drawSky scatters snowflakes behind the scene. Everything drawn later
// covers them.
func drawSky(dst *core.Screen, s Snapshot) {
	fall := s.Tick / flakeFallTicks
	drift := int(s.ScrollOffset / (flakeDriftCells * core.CellPixelsX))
	for r := range dst.Height() {
		for c := range dst.Width() {
			if flakeAt(c+drift, r-fall) {
				dst.SetColored(c, r, SkyFlake, core.ColorSky)
			}
		}
	}
}

// flakeAt reports whether the sky pattern has a flake at column c, row r.
func flakeAt(c, r int) bool {
	h := uint32(c)*73856093 ^ uint32(r)*19349663
	h ^= h >> 13
	return h%29 == 0
}

func drawMountains(dst *core.Screen, s Snapshot, shake int) {
	snowLine := 30 * s.Metrics.Scale
	for _, m := range s.Mountains {
		if m.Width <= 0 {
			continue
		}
		peakX := m.X + m.Width/2
		bottom := cellY(m.BaseY)
		for c := cellX(m.X); c <= cellX(m.X+m.Width); c++ {
			dist := math.Abs(colCenter(c) - peakX)
			top := m.BaseY - m.Height*(1-2*dist/m.Width)
			if top >= m.BaseY {
				continue
			}
			for r := cellY(top); r <= bottom; r++ {
				ch, col := MountainChar, core.ColorGray
				if float64(r)*core.CellPixelsY < m.BaseY-m.Height+snowLine {
					col = core.ColorBrightWhite
				}
				if r == cellY(top) {
					ch = PeakChar
				}
				dst.SetColored(c+shake, r, ch, col)
			}
		}
	}
}

func drawTrees(dst *core.Screen, s Snapshot, shake int) {
	sc := s.Metrics.Scale
	for _, t := range s.Trees {
		mid := t.X + t.Size/2
		trunkTop := cellY(t.BaseY - 12*sc)
		for r := trunkTop; r <= cellY(t.BaseY+4*sc); r++ {
			dst.SetColored(cellX(mid)+shake, r, TrunkChar, core.ColorBrown)
		}
		for i := 0; i < t.Layers; i++ {
			width := t.Size - float64(i)*8*sc
			y := t.BaseY - 20*sc - float64(i)*12*sc
			col := core.ColorGreen
			if t.Snowy && i == t.Layers-1 {
				col = core.ColorBrightWhite
			}
			for c := cellX(mid - width/2); c <= cellX(mid+width/2); c++ {
				dst.SetColored(c+shake, cellY(y), NeedleChar, col)
			}
		}
	}
}

func drawGround(dst *core.Screen, s Snapshot, shake int) {
	stripe := s.Metrics.PixelSize * 4
	for c := 0; c < dst.Width(); c++ {
		g := s.Slope.GroundHeightAt(colCenter(c))
		row := cellY(g)
		frac := g/core.CellPixelsY - float64(row)

		surface := SurfaceHigh
		if frac >= 0.5 {
			surface = SurfaceLow
		}
		shade := core.ColorBrightWhite
		if int(math.Floor((colCenter(c)+s.ScrollOffset)/stripe))%2 == 0 {
			shade = core.ColorCyan
		}
		dst.SetColored(c+shake, row, surface, shade)
		for r := row + 1; r < dst.Height(); r++ {
			dst.SetColored(c+shake, r, SnowChar, core.ColorWhite)
		}
	}
}

// drawImage samples an image into the cells covered by rect.
func drawImage(dst *core.Screen, img *assets.Image, rotation int, rect core.RectF, c core.Color, shake int) {
	if !img.Loaded() {
		return
	}
	rows := img.Rows
	if rotation != 0 {
		rows = assets.Rotate(rows, rotation)
	}
	drawSprite(dst, rows, rect, c, shake)
}

func drawSprite(dst *core.Screen, rows [][]rune, rect core.RectF, c core.Color, shake int) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}
	c0 := int(math.Round(rect.Left/core.CellPixelsX)) + shake
	c1 := int(math.Round(rect.Right/core.CellPixelsX)) + shake
	r0 := int(math.Round(rect.Top / core.CellPixelsY))
	r1 := int(math.Round(rect.Bottom / core.CellPixelsY))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	h, w := len(rows), len(rows[0])
	for y := r0; y < r1; y++ {
		sy := (y - r0) * h / (r1 - r0)
		for x := c0; x < c1; x++ {
			sx := (x - c0) * w / (c1 - c0)
			if ch := rows[sy][sx]; ch != ' ' {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

func drawParticles(dst *core.Screen, ps []Particle, shake int) {
	for _, p := range ps {
		ch := ParticleLight
		if p.Opacity > 0.5 {
			ch = ParticleHeavy
		}
		dst.SetColored(cellX(p.X)+shake, cellY(p.Y), ch, core.ColorBrightWhite)
	}
}

func drawSkier(dst *core.Screen, s Snapshot, shake int) {
	p := s.Player
	body := core.RectF{Left: p.X, Top: p.Y - p.Height, Right: p.X + p.Width, Bottom: p.Y}
	drawImage(dst, s.Skier, 0, body, core.ColorBrightBlue, shake)

	if s.Hat.Loaded() {
		hat := core.RectF{
			Left:   p.X + p.Width*0.35,
			Top:    body.Top - core.CellPixelsY,
			Right:  p.X + p.Width*0.65,
			Bottom: body.Top,
		}
		drawImage(dst, s.Hat, 0, hat, core.ColorRed, shake)
	}
}

func drawHUD(dst *core.Screen, s Snapshot, texts *Texts, best float64) {
	if s.Mode == ModePresent {
		meters := int(s.Distance)
		total := int(s.TotalDistance)
		label := texts.ProgressLabel + " "
		dst.DrawTextColored(1, 0, label, core.ColorWhite)

		barW := core.Max(10, dst.Width()/4)
		frac := 0.0
		if s.TotalDistance > 0 {
			frac = core.ClampF(s.Distance/s.TotalDistance, 0, 1)
		}
		filled := int(frac * float64(barW))
		bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barW-filled) + "]"
		dst.DrawTextColored(1+len([]rune(label)), 0, bar, core.ColorGreen)

		info := fmt.Sprintf(texts.ProgressFormat, meters, total, total-meters)
		dst.DrawTextColored(2, 1, info, core.ColorWhite)
	} else {
		text := fmt.Sprintf("%s: %dm  %s", texts.DistanceLabel, int(s.Distance), fmt.Sprintf(texts.BestFormat, int(best)))
		dst.DrawTextColored(1, 0, text, core.ColorWhite)
	}

	var meter string
	color := core.ColorYellow
	switch {
	case s.Boosting:
		meter = texts.Boosting
		color = core.ColorBrightMagenta
	case s.BoostReady:
		meter = texts.BoostReady
		color = core.ColorBrightGreen
	default:
		n := int(s.BoostCharge * 10)
		meter = texts.BoostCooldown + " " + strings.Repeat("■", n) + strings.Repeat("□", 10-n)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(meter))-1, 0, meter, color)

	if s.Tick < hintTicks && s.Phase == PhasePlaying {
		hint := texts.JumpHint + "   " + texts.BoostHint
		dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
	}
}

func drawGameOver(dst *core.Screen, s Snapshot, texts *Texts) {
	distance := fmt.Sprintf(texts.DistanceSkied, int(s.Distance))
	if s.Mode == ModePresent {
		distance = fmt.Sprintf(texts.DistanceOf, int(s.Distance), int(s.TotalDistance))
	}
	lines := []string{texts.GameOverTitle, texts.GameOverMessage, distance, texts.RestartHint}
	drawOverlay(dst, s.Staging, lines, core.ColorBrightRed)
}

// drawOverlay draws a centered message box. The box unrolls with the fade
// and lines appear one by one.
func drawOverlay(dst *core.Screen, st Staging, lines []string, c core.Color) {
	if st.Fade <= 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	shown := core.Max(1, int(math.Ceil(st.Fade*float64(boxH))))
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, shown), ' ', core.ColorDefault)
	if shown < boxH {
		return
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)
	for i, l := range lines {
		if i >= st.LinesVisible {
			break
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}

// Package assets loads the sprite images drawn by the renderer.
//
// Images are loaded in the background ahead of time. A handle is available
// immediately and reports Loaded() == false until its data is ready; the game
// never waits for an image, it only checks the flag.
package assets

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-ski/internal/core"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// Image is an opaque sprite handle. Rows, Width and Height are only valid
// once Loaded reports true.
type Image struct {
	Name   string
	Rows   [][]rune
	Width  float64 // virtual pixels
	Height float64 // virtual pixels

	loaded atomic.Bool
}

// Loaded reports whether the image data is ready. A nil image is never loaded.
func (img *Image) Loaded() bool {
	return img != nil && img.loaded.Load()
}

// Aspect returns width over height, or 1 while the image is not loaded.
func (img *Image) Aspect() float64 {
	if !img.Loaded() || img.Height <= 0 {
		return 1
	}
	return img.Width / img.Height
}

// set publishes the decoded rows. Must be called at most once per image.
func (img *Image) set(rows [][]rune) {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	for i, r := range rows {
		if pad := cols - len(r); pad > 0 {
			rows[i] = append(r, []rune(strings.Repeat(" ", pad))...)
		}
	}
	img.Rows = rows
	img.Width = float64(cols * core.CellPixelsX)
	img.Height = float64(len(rows) * core.CellPixelsY)
	img.loaded.Store(true)
}

// Loader hands out image handles and fills them from a file system.
type Loader struct {
	fsys   fs.FS
	dir    string
	mu     sync.Mutex
	images map[string]*Image
	wg     sync.WaitGroup
	errs   []error
}

// NewLoader creates a loader reading "<name>.txt" files from dir in fsys.
func NewLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{
		fsys:   fsys,
		dir:    dir,
		images: make(map[string]*Image),
	}
}

// Embedded returns a loader over the sprites compiled into the binary.
func Embedded() *Loader {
	return NewLoader(spriteFS, "sprites")
}

// Image returns the handle for name, creating an unloaded placeholder when the
// name has not been requested before. It never blocks on loading.
func (l *Loader) Image(name string) *Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	img, ok := l.images[name]
	if !ok {
		img = &Image{Name: name}
		l.images[name] = img
	}
	return img
}

// Load starts loading the named images in the background. Images that fail to
// load stay unloaded forever; the error is kept for Err.
func (l *Loader) Load(ctx context.Context, names ...string) {
	for _, name := range names {
		img := l.Image(name)
		if img.Loaded() {
			continue
		}
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			if ctx.Err() != nil {
				return
			}
			rows, err := l.read(name)
			if err != nil {
				l.mu.Lock()
				l.errs = append(l.errs, err)
				l.mu.Unlock()
				return
			}
			img.set(rows)
		}()
	}
}

// LoadAll loads every sprite found in the loader's directory.
func (l *Loader) LoadAll(ctx context.Context) error {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return fmt.Errorf("assets: cannot list %s: %w", l.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".txt" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	l.Load(ctx, names...)
	return nil
}

// Wait blocks until all started loads have finished. Only tools and tests call
// this; the game loop never does.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Err returns the first load error, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.errs) == 0 {
		return nil
	}
	return l.errs[0]
}

func (l *Loader) read(name string) ([][]rune, error) {
	data, err := fs.ReadFile(l.fsys, path.Join(l.dir, name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}

	var rows [][]rune
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, []rune(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("assets: %s is empty", name)
	}
	return rows, nil
}

// Rotate returns the rows turned clockwise by a multiple of 90 degrees.
func Rotate(rows [][]rune, degrees int) [][]rune {
	turns := ((degrees/90)%4 + 4) % 4
	out := rows
	for i := 0; i < turns; i++ {
		out = rotateOnce(out)
	}
	return out
}

func rotateOnce(rows [][]rune) [][]rune {
	if len(rows) == 0 {
		return rows
	}
	h, w := len(rows), len(rows[0])
	out := make([][]rune, w)
	for x := 0; x < w; x++ {
		out[x] = make([]rune, h)
		for y := 0; y < h; y++ {
			out[x][h-1-y] = rows[y][x]
		}
	}
	return out
}

// Static builds an already loaded image from literal rows. Used for built-in
// fallbacks and tests.
func Static(name string, rows ...string) *Image {
	img := &Image{Name: name}
	decoded := make([][]rune, len(rows))
	for i, r := range rows {
		decoded[i] = []rune(r)
	}
	img.set(decoded)
	return img
}

// StaticSet is a fixed collection of loaded images keyed by name.
type StaticSet map[string]*Image

// Image returns the named image or nil, which reports as not loaded.
func (s StaticSet) Image(name string) *Image {
	return s[name]
}

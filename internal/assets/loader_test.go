package assets

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-ski/internal/core"
)

func TestImageHandleBeforeLoad(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, "sprites")

	img := l.Image("rock")
	if img.Loaded() {
		t.Error("image should not be loaded before Load")
	}
	if img.Aspect() != 1 {
		t.Errorf("unloaded aspect = %v, expected 1", img.Aspect())
	}
	if l.Image("rock") != img {
		t.Error("Image should return the same handle for the same name")
	}

	var nilImg *Image
	if nilImg.Loaded() || nilImg.Aspect() != 1 {
		t.Error("nil image should behave as unloaded")
	}
}

func TestLoadPadsRowsAndSizes(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/box.txt": {Data: []byte("ab\nabcd\n")},
	}
	l := NewLoader(fsys, "sprites")
	img := l.Image("box")

	l.Load(context.Background(), "box")
	l.Wait()

	if !img.Loaded() {
		t.Fatalf("image not loaded, err = %v", l.Err())
	}
	if len(img.Rows) != 2 || len(img.Rows[0]) != 4 {
		t.Fatalf("rows not padded: %q", img.Rows)
	}
	if img.Width != 4*core.CellPixelsX || img.Height != 2*core.CellPixelsY {
		t.Errorf("size = %vx%v", img.Width, img.Height)
	}
	if want := float64(4*core.CellPixelsX) / float64(2*core.CellPixelsY); img.Aspect() != want {
		t.Errorf("aspect = %v, expected %v", img.Aspect(), want)
	}
}

func TestLoadMissingStaysUnloaded(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, "sprites")
	img := l.Image("ghost")

	l.Load(context.Background(), "ghost")
	l.Wait()

	if img.Loaded() {
		t.Error("missing image must stay unloaded")
	}
	if l.Err() == nil {
		t.Error("expected a load error to be recorded")
	}
}

func TestLoadCancelled(t *testing.T) {
	fsys := fstest.MapFS{"sprites/a.txt": {Data: []byte("x")}}
	l := NewLoader(fsys, "sprites")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Load(ctx, "a")
	l.Wait()

	if l.Image("a").Loaded() {
		t.Error("cancelled load should not publish the image")
	}
}

func TestEmbeddedSprites(t *testing.T) {
	l := Embedded()
	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	l.Wait()

	for _, name := range []string{"skier", "hat", "present", "rock", "stump", "snowman", "sled"} {
		if !l.Image(name).Loaded() {
			t.Errorf("embedded sprite %q not loaded (err %v)", name, l.Err())
		}
	}
}

func TestRotate(t *testing.T) {
	rows := [][]rune{[]rune("ab"), []rune("cd")}

	if got := string(Rotate(rows, 180)[0]); got != "dc" {
		t.Errorf("180 first row = %q, expected \"dc\"", got)
	}

	r90 := Rotate(rows, 90)
	if string(r90[0]) != "ca" || string(r90[1]) != "db" {
		t.Errorf("90 = %q", r90)
	}

	if got := Rotate(rows, 360); string(got[0]) != "ab" {
		t.Errorf("full turn changed the sprite: %q", got)
	}
}

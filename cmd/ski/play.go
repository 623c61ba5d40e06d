package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/audio"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/registry"
	"github.com/vovakirdan/tui-ski/internal/scores"
	"github.com/vovakirdan/tui-ski/internal/ski"
)

var playCmd = &cobra.Command{
	Use:   "play [present|endless]",
	Short: "Play a mode",
	Long: `Start a ski run in the given mode (present by default).

Controls:
  Space/W/Up   - Jump (left-half click too)
  D/Right      - Boost tap; tap twice quickly to boost (right-half click too)
  P/Esc        - Pause
  R/Space      - Restart after a crash
  B/Esc        - Leave a paused or finished run
  Q/Ctrl+C     - Quit

Difficulty options (endless mode):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  ski play
  ski play endless --difficulty hard
  ski play present --seed 42 --mute
  ski play --config ./my-ski.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// modeGameID maps a CLI mode name to its registered game ID.
func modeGameID(name string) (string, error) {
	if registry.Exists(name) {
		return name, nil
	}
	mode, ok := ski.ParseMode(name)
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want present or endless)", name)
	}
	if mode == ski.ModeEndless {
		return ski.EndlessID, nil
	}
	return ski.PresentID, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openAudio returns an initialized cue player, or nil when sound is off or unavailable.
func openAudio() *audio.Player {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !flagMute
	if !cfg.Enabled {
		return nil
	}
	p := audio.NewPlayer(cfg)
	if err := p.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}

// runOptions assembles the per-run collaborators.
func runOptions(board *scores.Board, player *audio.Player) tui.Options {
	opts := tui.Options{
		Board:  board,
		Logger: logger,
		Player: os.Getenv("USER"),
	}
	// A nil *audio.Player must not become a non-nil interface
	if player != nil {
		opts.Audio = player
	}
	return opts
}

func runPlay(_ *cobra.Command, args []string) error {
	name := ski.ModePresent.String()
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := modeGameID(name)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	player := openAudio()
	if player != nil {
		defer player.Close()
	}

	if _, err := tui.Run(game, runtimeConfig(), runOptions(scores.NewBoard(), player)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/spectate"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagName      string
	flagCharacter string
	flagMute      bool
	flagVolume    float64
	flagDebug     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space/Up      - Flap / start
  Left/Right    - Choose bird (mouse wheel works too)
  L/Tab         - Leaderboard
  P             - Pause
  R             - Restart (after game over)
  Esc/B         - Back to menu
  Ctrl+S        - Save screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play --character wusaqi
  flappy play --difficulty hard --mute
  flappy play --seed 42 --config ./my-flappy.yaml
  flappy play --spectate :8080`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagName, "name", os.Getenv("USER"), "Name written to the leaderboard")
	cmd.Flags().StringVar(&flagCharacter, "character", "", "Bird to start with: "+characterNames())
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Volume adjustment in doublings (0 = default, -1 = half, 1 = double)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func characterNames() string {
	names := make([]string, 0, len(flappy.AllCharacters()))
	for _, c := range flappy.AllCharacters() {
		names = append(names, c.Name())
	}
	return strings.Join(names, ", ")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one local game until the player quits.
func play() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var character flappy.Character
	if flagCharacter != "" {
		character, err = flappy.ParseCharacter(flagCharacter)
		if err != nil {
			return err
		}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger, closeLog := openLog(flagLogPath, level)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	var gateway flappy.Gateway
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores will not persist", "db", flagDBPath, "err", err)
		gateway = storage.NewMemory(flappy.SaveRecord{})
	} else {
		defer store.Close()
		gateway = store.Gateway(storage.DefaultProfile, logger)
	}

	game, err := flappy.New(gameCfg, rt, flappy.Options{
		Logger:  logger,
		Gateway: gateway,
		Name:    flagName,
	})
	if err != nil {
		return err
	}
	if flagCharacter != "" {
		game.SelectCharacter(character)
	}

	var sink audio.Sink = audio.Nop{}
	if !flagMute {
		sink, err = audio.NewPlayer(flagVolume, logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sink.Close()

	opts := tui.Options{Sink: sink, Logger: logger}
	if store != nil {
		opts.Scores = store.TopScores
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		opts.Hub = hub
		go func() {
			if err := spectate.Serve(ctx, flagSpectate, hub); err != nil {
				logger.Error("spectator feed stopped", "err", err)
			}
		}()
	}

	logger.Info("starting game", "seed", seed, "fps", flagFPS, "character", game.Character().Name())
	if err := tui.Run(game, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game closed", "high_score", game.HighScore(), "games", game.Record().TotalGames)
	return nil
}

// flappy is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy scores            - Show the leaderboard and statistics
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/flappy.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--spectate <addr>    - Publish a live spectator feed on addr
//	--log <path>         - Log file (default: ~/.arcade/flappy.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpectate   string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a side-scrolling arcade game played in the terminal.
Flap through gaps between obstacles, collect points and climb the
leaderboard.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  flappy
  flappy play --character red_bird --difficulty hard
  flappy scores
  flappy serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/flappy.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/flappy.log", "Path to log file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig reads the game config and applies the difficulty preset.
func loadGameConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, err
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagProfile string
	flagAll     bool
	flagReset   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard and statistics of a profile.

Local games use the "local" profile; SSH players each have a profile
named after their SSH user.

Examples:
  flappy scores
  flappy scores --profile alice
  flappy scores --all
  flappy scores --profile alice --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show the best scores across all profiles")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the profile's scores and statistics")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagReset:
		err = resetProfile(store, flagProfile)
	case flagAll:
		err = printGlobal(store)
	default:
		err = printProfile(store, flagProfile)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resetProfile(store *storage.Store, profile string) error {
	if err := store.ClearProfile(profile); err != nil {
		return err
	}
	fmt.Printf("Cleared profile %q.\n", profile)
	return nil
}

func printProfile(store *storage.Store, profile string) error {
	rec, err := store.LoadRecord(profile)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s\n", profile)
	fmt.Println()

	if len(rec.Leaderboard) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flappy play' to set the first high score!")
		return nil
	}

	now := time.Now()
	fmt.Printf("  %-4s  %-6s  %-12s  %-12s  %s\n", "Rank", "Score", "Bird", "Player", "When")
	fmt.Printf("  %-4s  %-6s  %-12s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, e := range rec.Leaderboard {
		fmt.Printf("  %-4d  %-6d  %-12s  %-12s  %s\n",
			i+1, e.Score, e.Character, orDash(e.Name), flappy.RelativeTime(e.Timestamp, now))
	}

	fmt.Println()
	for _, line := range flappy.StatsLines(rec) {
		fmt.Println(line)
	}
	return nil
}

func printGlobal(store *storage.Store) error {
	entries, err := store.TopScores(20)
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard - all profiles")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	now := time.Now()
	fmt.Printf("  %-4s  %-6s  %-12s  %-12s  %s\n", "Rank", "Score", "Profile", "Bird", "When")
	fmt.Printf("  %-4s  %-6s  %-12s  %-12s  %s\n", "----", "-----", "-------", "----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-6d  %-12s  %-12s  %s\n",
			i+1, e.Score, e.Profile, e.Character, flappy.RelativeTime(e.Timestamp, now))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

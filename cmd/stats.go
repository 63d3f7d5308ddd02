package cmd

import (
	"fmt"
	"strings"

	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/catalog"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/progress"
	"github.com/mshoubaki/Spelling-Bee-Trainer/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spelling statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		stats, err := st.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		ladder := progress.DefaultLadder()
		if data, err := st.LoadLadder(ctx); err == nil && data != nil {
			ladder = progress.Decode(data)
		}

		mins := int(stats.TotalPlayTime.Minutes())
		secs := int(stats.TotalPlayTime.Seconds()) % 60

		fmt.Println("Play History")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-24s %d\n", "Words attempted", stats.RoundsPlayed)
		fmt.Printf("%-24s %d\n", "Words spelled", stats.WordsSpelled)
		fmt.Printf("%-24s %d\n", "Words skipped", stats.WordsSkipped)
		fmt.Printf("%-24s %d\n", "Mistakes", stats.TotalMistakes)
		fmt.Printf("%-24s %d:%02d\n", "Time spelling", mins, secs)
		fmt.Printf("%-24s %d\n", "Stage runs", stats.StageRuns)

		fmt.Println()
		fmt.Println("Stages")
		fmt.Println(strings.Repeat("─", 40))
		for i, sp := range ladder {
			state := "locked"
			if sp.Unlocked {
				state = fmt.Sprintf("%-3s  best %d/%d",
					strings.Repeat("★", sp.Stars), sp.BestCorrect, catalog.WordsPerStage)
			}
			fmt.Printf("Stage %2d   %s\n", i+1, state)
		}
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Total stars: %d / %d\n",
			ladder.TotalStars(), progress.StageCount*progress.MaxStars)

		return nil
	},
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edukite/pathfinder/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.QuerySessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No completed assessments yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-9s  %-8s  %-9s  %s\n",
			"Timestamp", "Name", "Answered", "TimedOut", "Duration", "Top Match")
		fmt.Println(strings.Repeat("─", 100))

		for _, sess := range sessions {
			answered := fmt.Sprintf("%d/%d", sess.Answered, sess.TotalQuestions)
			top := sess.TopRecommendation
			if sess.FallbackUsed {
				top += " *"
			}
			fmt.Printf("%-19s  %-20s  %-9s  %-8d  %-9s  %s\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(sess.Name, 20),
				answered,
				sess.TimedOut,
				fmt.Sprintf("%ds", sess.DurationSecs),
				top,
			)
		}

		fmt.Println()
		fmt.Println("* fallback recommendations were shown")
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}

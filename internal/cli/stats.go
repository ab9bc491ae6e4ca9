package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sadopc/pomo/internal/store"
	"github.com/spf13/cobra"
)

var statsDays int

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "number of days to show, ending today")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed pomodoros per day",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", statsDays)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -statsDays)

	counts, err := s.GetDailyCounts(from, to)
	if err != nil {
		return err
	}
	total, err := s.TotalFocus()
	if err != nil {
		return err
	}

	byDate := make(map[string]store.DailyCount, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPOMODOROS\tFOCUS")
	var n int
	var secs int64
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		c := byDate[d.Format("2006-01-02")]
		n += c.Count
		secs += c.FocusSeconds
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.Format("2006-01-02"), c.Count, time.Duration(c.FocusSeconds)*time.Second)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d pomodoros in the last %d days (%s focused), %d all time\n",
		n, statsDays, time.Duration(secs)*time.Second, total)
	return nil
}

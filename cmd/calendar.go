package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/progress"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "List the platform's upcoming content suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		var entries []content.CalendarEntry
		if err := progress.Run(progress.NewIndicator(), "Loading content calendar", func() error {
			var err error
			entries, err = client.ContentCalendar(cmd.Context())
			return err
		}); err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No suggestions scheduled.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tTYPE\tSUGGESTION")
		for _, e := range entries {
			date := e.Date
			if day := e.Day(); !day.IsZero() {
				date = day.Format("Mon 2006-01-02")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", date, e.ContentType.Label(), e.Suggestion)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

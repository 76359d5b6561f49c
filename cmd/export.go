package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/dashboard"
	"github.com/ziadkadry99/content-studio/internal/progress"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

var (
	exportOutput string
	exportSearch string
	exportType   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the platform's content list as JSON",
	Long: `Loads the platform dashboard and writes every content card as a JSON array
of {id, title, type, created}. --search or --type limit the export to the
cards that filter shows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		notifier := dashboard.NewNotifier(ui.RealScheduler, cfg.Timings.NoticeDismiss)
		ctrl := dashboard.NewController(client, notifier, dashboard.ControllerOptions{})
		if err := progress.Run(progress.NewIndicator(), "Loading dashboard", func() error {
			return ctrl.Reload(cmd.Context())
		}); err != nil {
			return err
		}

		filtered := exportSearch != "" || exportType != ""
		switch {
		case exportSearch != "":
			ctrl.Search(exportSearch)
		case exportType != "":
			ctrl.Filter(exportType)
		}

		var buf bytes.Buffer
		if err := ctrl.Export(&buf, filtered); err != nil {
			return err
		}
		buf.WriteByte('\n')

		if exportOutput == "" || exportOutput == "-" {
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}

		snap := ctrl.Snapshot()
		count := len(snap.All)
		if filtered {
			count = len(snap.Visible)
		}
		fmt.Fprintf(os.Stderr, "Exported %d items to %s\n", count, exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", dashboard.ExportFilename, `output file ("-" for stdout)`)
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "only export cards matching this search")
	exportCmd.Flags().StringVar(&exportType, "type", "", "only export cards of this content type")
	rootCmd.AddCommand(exportCmd)
}

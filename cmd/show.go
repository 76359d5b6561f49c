package cmd

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one content record from the platform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		d, err := client.GetContent(cmd.Context(), args[0])
		if apiclient.IsHTTPStatus(err, http.StatusNotFound) {
			return fmt.Errorf("content %s not found", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (#%d)\n", d.Title, d.ID)
		fmt.Printf("  Type:      %s\n", d.ContentType)
		if created := d.Created(); !created.IsZero() {
			fmt.Printf("  Created:   %s\n", created.Format("2006-01-02 15:04"))
		}
		if d.OutputPath != "" {
			fmt.Printf("  Output:    %s\n", client.URL(d.OutputPath))
		}
		if d.ThumbnailPath != "" {
			fmt.Printf("  Thumbnail: %s\n", client.URL(d.ThumbnailPath))
		}
		fmt.Printf("  Detail:    %s\n", client.URL(fmt.Sprintf("/content/%d", d.ID)))
		if d.InputText != "" {
			fmt.Printf("\n%s\n", d.InputText)
		}
		if len(d.Metadata) > 0 {
			keys := make([]string, 0, len(d.Metadata))
			for k := range d.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Println()
			for _, k := range keys {
				fmt.Printf("  %s: %s\n", k, d.Metadata[k])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/dashboard"
	"github.com/ziadkadry99/content-studio/internal/page"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Report what studio reads from a platform page",
	Long: `Fetches a page from the platform and prints the parts studio relies on:
navigation, flash messages, copy buttons, tooltips and popovers, file inputs,
forms, and the content or format cards the page carries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		path := "/" + strings.TrimLeft(args[0], "/")
		body, err := client.FetchPage(cmd.Context(), path)
		if err != nil {
			return err
		}
		chrome, err := page.ParseChrome(bytes.NewReader(body))
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n", client.URL(path))

		fmt.Println("Navigation:")
		for _, l := range ui.ActiveNav(chrome.Nav, path) {
			marker := " "
			if l.Active {
				marker = "*"
			}
			fmt.Printf("  %s %-20s %s\n", marker, l.Text, l.Href)
		}

		if len(chrome.Flashes) > 0 {
			fmt.Println("\nFlash messages:")
			for _, f := range chrome.Flashes {
				fmt.Printf("  [%s] %s\n", f.Category, f.Message)
			}
		}

		if len(chrome.Copy) > 0 {
			fmt.Println("\nCopy buttons:")
			for _, c := range chrome.Copy {
				fmt.Printf("  %-20s copies %q\n", c.Label, c.Text)
			}
		}

		fmt.Printf("\nWidgets: %d tooltips, %d popovers\n", len(chrome.Widgets.Tooltips), len(chrome.Widgets.Popovers))

		for _, in := range chrome.FileInputs {
			fmt.Printf("\nFile input %s (accept %q): %s\n", in.Name, in.Accept, ui.FileLabel(in.Label, "no label"))
		}

		for _, f := range chrome.Forms {
			fmt.Printf("\nForm #%s %s %s\n", f.ID, strings.ToUpper(f.Method), f.Action)
			for _, field := range f.Form.Fields {
				fmt.Printf("  %-16s %-10s%s\n", field.Name, field.Type, constraints(field))
			}
		}

		if cards, err := page.ParseDashboard(bytes.NewReader(body)); err == nil && len(cards) > 0 {
			stats := dashboard.ComputeStats(cards)
			fmt.Printf("\nContent cards: %d (%d photo quotes, %d videos)\n", stats.Total, stats.PhotoQuotes, stats.Videos)
			for _, c := range cards {
				fmt.Printf("  %-6s %-14s %s\n", c.ID, c.Type, c.Title)
			}
		}

		if formats, err := page.ParseFormatCards(bytes.NewReader(body)); err == nil && len(formats) > 0 {
			fmt.Println("\nFormat cards:")
			for _, f := range formats {
				fmt.Printf("  %-14s %s\n", f, f.Label())
			}
		}
		return nil
	},
}

// constraints describes a field's HTML5 constraints.
func constraints(f ui.Field) string {
	var parts []string
	if f.Required {
		parts = append(parts, "required")
	}
	if f.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("minlength=%d", f.MinLength))
	}
	if f.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("maxlength=%d", f.MaxLength))
	}
	if f.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern=%q", f.Pattern))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

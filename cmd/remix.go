package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/progress"
)

var remixTarget string

var remixCmd = &cobra.Command{
	Use:   "remix <id>",
	Short: "Turn a content item into a new item of another format",
	Long: `Asks the platform to remix an existing content item into another format.
Without --to, the target format is picked interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := content.Format(remixTarget)
		if remixTarget == "" {
			f, err := selectFormat()
			if err != nil {
				return err
			}
			target = f
		}
		if !target.Valid() {
			return fmt.Errorf("unknown content type %q", remixTarget)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		var newID int
		err = progress.Run(progress.NewIndicator(), "Remixing into "+target.Label(), func() error {
			var err error
			newID, err = client.Remix(cmd.Context(), args[0], target)
			return err
		})
		switch {
		case apiclient.IsHTTPStatus(err, http.StatusNotFound):
			return fmt.Errorf("content %s not found", args[0])
		case apiclient.IsHTTPStatus(err, http.StatusForbidden):
			return fmt.Errorf("content %s belongs to another account", args[0])
		case err != nil:
			return err
		}

		fmt.Printf("Created %s #%d\n", target.Label(), newID)
		fmt.Printf("  Detail: %s\n", client.URL("/content/"+strconv.Itoa(newID)))
		return nil
	},
}

func init() {
	remixCmd.Flags().StringVar(&remixTarget, "to", "", "target content type (photo_quote, video_reel, voice_video, avatar_video)")
	rootCmd.AddCommand(remixCmd)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/composer"
	"github.com/ziadkadry99/content-studio/internal/config"
	"github.com/ziadkadry99/content-studio/internal/dashboard"
	"github.com/ziadkadry99/content-studio/internal/server"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

var (
	serverPort     int
	serverAllowAll bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the local studio console",
	Long:  `Starts the studio console: the composer, the content dashboard and the live notice channel, backed by the configured content platform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		client, err := newClientFromConfig(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: serverAllowAll,
		}, buildFeatures(cfg, client)...)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "studio %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Platform: %s\n", cfg.UpstreamURL)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// buildFeatures wires the composer and the dashboard to the upstream client.
func buildFeatures(cfg *config.Config, client *apiclient.Client) []server.Feature {
	sched := ui.RealScheduler
	flashes := ui.NewFlashBoard(sched, cfg.Timings.FlashDismiss)
	notifier := dashboard.NewNotifier(sched, cfg.Timings.NoticeDismiss)

	trigger := composer.NewPromptTrigger(client, cfg.Prompts.Count, cfg.Prompts.DefaultTheme)
	comp := composer.New(trigger, client, composer.Options{
		Policy:   audioPolicyFromConfig(cfg),
		Flashes:  flashes,
		Calendar: client,
	})

	ctrl := dashboard.NewController(client, notifier, dashboard.ControllerOptions{
		Scheduler:    sched,
		CopyFeedback: cfg.Timings.CopyFeedback,
	})
	dash := dashboard.New(ctrl, notifier, dashboard.Options{
		Flashes:            flashes,
		Scheduler:          sched,
		ScrollDebounce:     cfg.Timings.ScrollDebounce,
		BackToTopThreshold: cfg.BackToTopThreshold,
	})

	return []server.Feature{comp, dash}
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	serverCmd.Flags().BoolVar(&serverAllowAll, "cors-allow-all", false, "Allow all CORS origins")
	rootCmd.AddCommand(serverCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/content-studio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize studio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to connect studio to your content platform and generates a .studio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"combo/internal/config"
	"combo/pkg/logger"
)

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample picker config",
		Long: "Write a sample picker config to path, or to the default config file.\n" +
			"The format follows the file extension (.toml, .yaml, .yml or .json).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			cs := config.NewConfigService(*logger.FromContext(cmd.Context()))
			if err := cs.SaveToPath(config.SampleConfig(), path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"combo/pkg/settings"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := settings.VersionInformation
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
			return err
		},
	}
}

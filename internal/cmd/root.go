package cmd

import (
	"github.com/spf13/cobra"

	"github.com/davrd/buildstamp/internal/logger"
)

func NewCmdRoot(f *Factory, version, buildDate string) (*cobra.Command, error) {
	var verboseLevel int

	cmd := &cobra.Command{
		Use:   "buildstamp",
		Short: "Build-time constant injection for Go source",
		Long:  "Rewrites stamp marker calls into literals derived from the build timestamp and toolchain version.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f.Logger.SetLevel(logger.Level(-verboseLevel))
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().Bool("help", false, "Show help for command")
	cmd.PersistentFlags().CountVarP(&verboseLevel, "verbose", "v", "verbose output (-v or -vv)")

	cmd.AddCommand(NewCmdVersion(f, version, buildDate))
	cmd.AddCommand(NewCmdRewrite(f))
	cmd.AddCommand(NewCmdResolve(f))
	cmd.AddCommand(NewCmdList(f))

	return cmd, nil
}

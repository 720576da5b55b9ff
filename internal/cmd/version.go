package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCmdVersion(f *Factory, version string, buildDate string) *cobra.Command {
	v := version
	if buildDate != "" {
		v = fmt.Sprintf("%s (%s)", version, buildDate)
	}

	cmd := &cobra.Command{
		Use:  "version",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			f.Logger.Printf("buildstamp version %s", v)
		},
	}

	return cmd
}

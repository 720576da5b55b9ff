package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrd/buildstamp/internal/views"
)

func NewCmdList(f *Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the recognized view tags and their marker functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range views.All() {
				fmt.Fprintf(f.Stdout, "%-32s stamp.%s()\n", k.Tag(), k.Marker())
			}
		},
	}

	return cmd
}

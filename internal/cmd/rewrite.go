package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrd/buildstamp/internal/rewrite"
	"github.com/davrd/buildstamp/internal/snapshot"
)

type RewriteOpts struct {
	Write     bool
	StampPath string
	Jobs      int
}

func NewCmdRewrite(f *Factory) *cobra.Command {
	opts := &RewriteOpts{}

	cmd := &cobra.Command{
		Use:   "rewrite [path ...]",
		Short: "Replace stamp marker calls with build-time literals",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("at least one file or directory is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rewriteRun(cmd.Context(), f, opts, args)
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().
		BoolVarP(&opts.Write, "write", "w", false, "Write result to the source file instead of stdout")
	cmd.Flags().
		StringVar(&opts.StampPath, "stamp-package", rewrite.DefaultStampPath, "Import path of the marker package")
	cmd.Flags().
		IntVar(&opts.Jobs, "jobs", 0, "Max files rewritten concurrently (default GOMAXPROCS)")

	return cmd
}

func rewriteRun(ctx context.Context, f *Factory, opts *RewriteOpts, paths []string) error {
	source := snapshot.New(f.Clock, f.Toolchain)
	r := rewrite.New(source, opts.StampPath)

	n, err := r.Files(ctx, paths, rewrite.FilesOpts{
		Write: opts.Write,
		Out:   f.Stdout,
		Jobs:  opts.Jobs,
	})
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}

	f.Logger.Infof("rewrote %d marker call(s)", n)
	return nil
}

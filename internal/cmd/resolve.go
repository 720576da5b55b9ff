package cmd

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/davrd/buildstamp/internal/emit"
	"github.com/davrd/buildstamp/internal/snapshot"
	"github.com/davrd/buildstamp/internal/views"
)

func NewCmdResolve(f *Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <tag>",
		Short: "Print the literal expression for one view tag",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var tags []string
			for _, k := range views.All() {
				tags = append(tags, k.Tag())
			}
			return tags, cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("tag is required")
			} else if len(args) > 1 {
				return fmt.Errorf("only one tag is allowed")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveRun(cmd.Context(), f, args[0])
		},
	}

	return cmd
}

func resolveRun(ctx context.Context, f *Factory, tag string) error {
	kind, err := views.ParseTag(tag)
	if err != nil {
		return err
	}

	source := snapshot.New(f.Clock, f.Toolchain)
	var in snapshot.Instant
	var version *semver.Version
	if kind.Versioned() {
		if version, err = source.Toolchain(ctx); err != nil {
			return err
		}
	} else {
		if in, err = source.Instant(); err != nil {
			return err
		}
	}

	expr, _, err := emit.Literal(kind, "stamp", in, version)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return fmt.Errorf("format literal: %w", err)
	}
	fmt.Fprintln(f.Stdout, buf.String())
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/tedmax100/lifo/internal/render"
	"github.com/tedmax100/lifo/stack"
)

func (a *app) dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [items...]",
		Short: "Show items as a stack with the first item on top",
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Render(cmd.OutOrStdout(), stack.Of(args...), a.cfg.Format)
		},
	}
	cmd.Flags().String("format", string(render.Text), "output format (text, markdown, html)")
	return cmd
}

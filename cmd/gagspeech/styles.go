package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/go-gagspeech/internal/render"
	"github.com/spf13/cobra"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List available gag styles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, style := range render.Styles() {
				marker := " "
				if style == cfg.Gag.Style {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s\t%s\n", marker, style, render.Description(style))
			}
			return w.Flush()
		},
	}
}

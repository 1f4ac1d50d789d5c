package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/galaxygen/galaxy"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a level specification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, source, err := a.loadSpec()
			if err != nil {
				return err
			}
			// levels.Load validates already; the default spec is checked here.
			if err = galaxy.Validate(spec); err != nil {
				return err
			}

			var clusters int
			for _, ls := range spec {
				clusters += ls.Clusters
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s: %d levels, %d clusters, %d nodes\n",
				source, len(spec), clusters, spec.TotalNodes())
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kervanta/geodesic"
)

// newPathCmd creates the path command: compute a distance table and print
// the start→target vertex sequence with cumulative distances.
func newPathCmd() *cobra.Command {
	var (
		flags  runFlags
		target int
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Reconstruct the shortest path from the start set to a target vertex",
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, connectivity, err := loadGeometry(flags.inputFlags)
			if err != nil {
				return err
			}

			cfg, err := buildRunConfig(cmd, &flags)
			if err != nil {
				return err
			}

			rep, err := geodesic.Distances(positions, connectivity, cfg)
			if err != nil {
				return err
			}
			logRun(cmd, rep)

			nodes, err := geodesic.PathTo(rep, target)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "vertex\tdistance")
			for _, n := range nodes {
				fmt.Fprintf(w, "%d\t%g\n", n.Vertex, n.Distance)
			}

			return nil
		},
	}

	registerRunFlags(cmd, &flags)
	cmd.Flags().IntVar(&target, "target", 0, "target vertex (1-indexed)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kervanta/geodesic"
)

// newDistCmd creates the dist command: compute a distance table and print it
// as aligned text, or write it as CSV with --out.
func newDistCmd() *cobra.Command {
	var (
		flags runFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Compute shortest-path distances from the start vertices",
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

			if out != "" {
				return writeRecordsCSV(out, rep)
			}

			return printRecords(cmd, rep)
		},
	}

	registerRunFlags(cmd, &flags)
	cmd.Flags().StringVar(&out, "out", "", "write the distance table as CSV to this file")

	return cmd
}

// printRecords writes the table to stdout, one row per vertex.
func printRecords(cmd *cobra.Command, rep *geodesic.Report) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "vertex\tpredecessor\tdistance")
	for _, rec := range rep.Records {
		if !rec.Reached {
			fmt.Fprintf(w, "%d\t-\t-\n", rec.Vertex)
			continue
		}
		pred := "-"
		if rec.Predecessor != 0 {
			pred = strconv.Itoa(rec.Predecessor)
		}
		fmt.Fprintf(w, "%d\t%s\t%g\n", rec.Vertex, pred, rec.Distance)
	}

	return nil
}

// writeRecordsCSV writes the table as vertex,predecessor,distance rows.
// Unreached vertices carry empty predecessor and distance cells.
func writeRecordsCSV(path string, rep *geodesic.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"vertex", "predecessor", "distance"}); err != nil {
		return err
	}
	for _, rec := range rep.Records {
		row := []string{strconv.Itoa(rec.Vertex), "", ""}
		if rec.Reached {
			if rec.Predecessor != 0 {
				row[1] = strconv.Itoa(rec.Predecessor)
			}
			row[2] = strconv.FormatFloat(rec.Distance, 'g', -1, 64)
		}
		if err = w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/kervanta/geodesic"
)

// runFlags are the flags shared by the dist and path commands: geometry
// sources plus the run parameters that may also come from a config file.
type runFlags struct {
	inputFlags
	configPath string
	starts     []int
	radius     float64
	origin     int
}

// registerRunFlags wires the shared flags onto cmd.
func registerRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.obj, "obj", "", "Wavefront OBJ input (triangulated)")
	cmd.Flags().StringVar(&f.positions, "positions", "", "positions CSV, 1-3 numeric columns")
	cmd.Flags().StringVar(&f.connectivity, "connectivity", "", "connectivity CSV, 2 or 3 integer columns")
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file with run defaults")
	cmd.Flags().IntSliceVar(&f.starts, "start", nil, "start vertex, repeatable")
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "search radius; 0 means unbounded")
	cmd.Flags().IntVar(&f.origin, "origin", 0, "index origin of the connectivity table (default: inferred)")
}

// buildRunConfig merges config-file defaults with explicitly set flags;
// flags win over file values.
func buildRunConfig(cmd *cobra.Command, f *runFlags) (geodesic.RunConfig, error) {
	cfg := geodesic.RunConfig{Ctx: cmd.Context()}

	if f.configPath != "" {
		fileCfg, err := loadConfig(f.configPath)
		if err != nil {
			return geodesic.RunConfig{}, err
		}
		cfg.Starts = fileCfg.Starts
		cfg.MaxDistance = fileCfg.MaxDistance
		cfg.IndexOrigin = fileCfg.Origin
	}

	if cmd.Flags().Changed("start") {
		cfg.Starts = f.starts
	}
	if cmd.Flags().Changed("radius") {
		cfg.MaxDistance = f.radius
	}
	if cmd.Flags().Changed("origin") {
		origin := f.origin
		cfg.IndexOrigin = &origin
	}

	return cfg, nil
}

// logRun reports run metadata and any dropped connectivity records.
func logRun(cmd *cobra.Command, rep *geodesic.Report) {
	logger := loggerFromContext(cmd.Context())
	for _, d := range rep.Meta.Dropped {
		logger.Warn("dropped connectivity record", "row", d.Row, "reason", d.Reason)
	}
	logger.Info("search complete",
		"run", rep.Meta.RunID,
		"vertices", rep.Meta.Vertices,
		"edges", rep.Meta.Edges,
		"origin", rep.Meta.OriginUsed,
		"starts", rep.Meta.Starts,
	)
}

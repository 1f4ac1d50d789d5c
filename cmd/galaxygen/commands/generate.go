package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/galaxygen/dot"
	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/logger"
	"github.com/katalvlaran/galaxygen/store"
	"github.com/katalvlaran/galaxygen/topology"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a galaxy and write its outputs",
		Long: `Generate builds clusters, populates nodes and creates links in one
sequential pass. With the same --seed and spec the output is byte-identical.
Without --seed (or GALAXYGEN_SEED) a time-based seed is drawn and printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd.Context(), cmd)
		},
	}
	cmd.Flags().Int64(keySeed, 0, "random seed; drawn from the clock when unset")
	cmd.Flags().String(keyDOT, "", "write a Graphviz DOT file")
	cmd.Flags().String(keyJSON, "", "write the snapshot as JSON")
	cmd.Flags().String(keyDB, "", "save the run into a SQLite database")
	cmd.Flags().String(keyName, "galaxy", "run name (DOT graph name and database label)")
	cmd.Flags().String(keyLayout, "fdp", "Graphviz layout engine recorded in the DOT file; empty for none")

	return cmd
}

func (a *app) runGenerate(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	spec, source, err := a.loadSpec()
	if err != nil {
		return err
	}
	seed := time.Now().UnixNano()
	if a.v.IsSet(keySeed) {
		seed = a.v.GetInt64(keySeed)
	}
	log := a.log.With(zap.Int64(logger.FieldSeed, seed), zap.String(logger.FieldSpec, source))

	start := time.Now()
	g, err := galaxy.Generate(spec, galaxy.WithSeed(seed), galaxy.WithLogger(log))
	if err != nil {
		return err
	}
	if err = g.CheckInvariants(); err != nil {
		return err
	}
	snap := g.Snapshot()
	report := topology.Analyze(snap)

	log.Info("galaxy generated",
		zap.Int(logger.FieldNodes, report.Nodes),
		zap.Int(logger.FieldEdges, report.Edges),
		zap.Float64("mean_degree", report.MeanDegree),
		zap.Int64(logger.FieldDuration, time.Since(start).Milliseconds()))
	if !report.Connected() {
		log.Warn("galaxy is disconnected",
			zap.Int("components", len(report.Components)),
			zap.Ints("isolated", report.Isolated))
	}

	if err = a.writeOutputs(ctx, log, spec, seed, snap); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:        %d\n", seed)
	fmt.Fprintf(out, "clusters:    %d\n", len(snap.Clusters))
	fmt.Fprintf(out, "nodes:       %d\n", report.Nodes)
	fmt.Fprintf(out, "edges:       %d (local %d, cross %d)\n", report.Edges, report.LocalEdges, report.CrossEdges)
	fmt.Fprintf(out, "degree:      min %d, max %d, mean %.2f\n", report.MinDegree, report.MaxDegree, report.MeanDegree)
	fmt.Fprintf(out, "components:  %d (isolated %d)\n", len(report.Components), len(report.Isolated))

	return nil
}

// writeOutputs runs the independent sinks concurrently. Generation has
// already finished, so no sink can observe a partial graph.
func (a *app) writeOutputs(ctx context.Context, log *zap.Logger, spec galaxy.Spec, seed int64, snap galaxy.Snapshot) error {
	name := a.v.GetString(keyName)
	eg, egCtx := errgroup.WithContext(ctx)

	if path := a.v.GetString(keyDOT); path != "" {
		eg.Go(func() error {
			return writeFile(path, func(f *os.File) error {
				return dot.Encode(f, snap, dot.WithName(name), dot.WithLayout(a.v.GetString(keyLayout)))
			})
		})
	}
	if path := a.v.GetString(keyJSON); path != "" {
		eg.Go(func() error {
			return writeFile(path, func(f *os.File) error {
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			})
		})
	}
	if path := a.v.GetString(keyDB); path != "" {
		eg.Go(func() error {
			db, err := store.Open(egCtx, path, log)
			if err != nil {
				return err
			}
			defer db.Close()
			id, err := db.SaveRun(egCtx, store.Run{Name: name, Seed: seed, Spec: spec, Snapshot: snap})
			if err != nil {
				return err
			}
			log.Info("run saved", zap.String(logger.FieldFile, path), zap.Int64(logger.FieldRunID, id))
			return nil
		})
	}

	return eg.Wait()
}

// writeFile creates path, lets fn fill it and closes it, keeping the first error.
func writeFile(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err = fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

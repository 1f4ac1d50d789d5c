package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/galaxygen/store"
	"github.com/katalvlaran/galaxygen/topology"
)

var (
	errNoDB  = errors.New("--db is required")
	errNoRun = errors.New("--run is required")
)

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	path := a.v.GetString(keyDB)
	if path == "" {
		return nil, errNoDB
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return store.Open(ctx, path, a.log)
}

func (a *app) runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs stored in a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintf(out, "%d\t%s\tseed=%d\tnodes=%d\tedges=%d\t%s\n",
					r.ID, r.Name, r.Seed, r.Nodes, r.Edges, r.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().String(keyDB, "", "SQLite database")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze a stored run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.v.IsSet(keyRun) {
				return errNoRun
			}
			db, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			run, err := db.LoadRun(cmd.Context(), a.v.GetInt64(keyRun))
			if err != nil {
				return err
			}
			r := topology.Analyze(run.Snapshot)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %d (%s, seed %d)\n", run.ID, run.Name, run.Seed)
			fmt.Fprintf(out, "nodes %d, edges %d, local %d, cross %d\n", r.Nodes, r.Edges, r.LocalEdges, r.CrossEdges)
			fmt.Fprintf(out, "degree min %d, max %d, mean %.2f\n", r.MinDegree, r.MaxDegree, r.MeanDegree)
			fmt.Fprintf(out, "components %d, isolated %v\n", len(r.Components), r.Isolated)

			pairs := make([]topology.LevelPair, 0, len(r.LevelPairs))
			for p := range r.LevelPairs {
				pairs = append(pairs, p)
			}
			sort.Slice(pairs, func(i, j int) bool {
				if pairs[i].Low != pairs[j].Low {
					return pairs[i].Low < pairs[j].Low
				}
				return pairs[i].High < pairs[j].High
			})
			for _, p := range pairs {
				fmt.Fprintf(out, "levels %d-%d: %d\n", p.Low, p.High, r.LevelPairs[p])
			}
			return nil
		},
	}
	cmd.Flags().String(keyDB, "", "SQLite database")
	cmd.Flags().Int64(keyRun, 0, "run ID (or GALAXYGEN_RUN)")

	return cmd
}

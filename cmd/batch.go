package main

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"StarGame/config"
	"StarGame/internal/archive"
	"StarGame/internal/game/engine"
	"StarGame/internal/game/manager"
	"StarGame/internal/storage"
	"StarGame/internal/utils"
)

// batchSummary aggregates many tournament results.
type batchSummary struct {
	Runs       int
	Actors     int
	Safe       int
	Eliminated int
	Unfinished int
	Rounds     int
	MinSafe    int
	MaxSafe    int
	// BestSeed is the first seed reaching MaxSafe.
	BestSeed int64
}

func (s *batchSummary) add(res engine.Result) {
	safe := len(res.Safe)
	if s.Runs == 0 || safe < s.MinSafe {
		s.MinSafe = safe
	}
	if s.Runs == 0 || safe > s.MaxSafe {
		s.MaxSafe = safe
		s.BestSeed = res.Seed
	}
	s.Runs++
	s.Actors += res.Actors
	s.Safe += safe
	s.Eliminated += len(res.Eliminated)
	s.Unfinished += len(res.Unfinished)
	s.Rounds += res.Rounds
}

func rate(part, whole int) string {
	if whole == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
}

func (s batchSummary) table() string {
	t := newTable("Metric", "Value")
	t.Row("tournaments", fmt.Sprint(s.Runs))
	t.Row("actors", fmt.Sprint(s.Actors))
	t.Row("safe", fmt.Sprintf("%d (%s)", s.Safe, rate(s.Safe, s.Actors)))
	t.Row("eliminated", fmt.Sprintf("%d (%s)", s.Eliminated, rate(s.Eliminated, s.Actors)))
	t.Row("unfinished", fmt.Sprintf("%d (%s)", s.Unfinished, rate(s.Unfinished, s.Actors)))
	if s.Runs > 0 {
		t.Row("mean rounds", fmt.Sprintf("%.2f", float64(s.Rounds)/float64(s.Runs)))
	}
	t.Row("safe per run", fmt.Sprintf("%d..%d", s.MinSafe, s.MaxSafe))
	t.Row("best seed", fmt.Sprint(s.BestSeed))
	return t.String()
}

// batchArchive opens the configured archive, except that an in-memory one
// would only grow for the length of the batch: nothing reads it back.
func batchArchive(ctx context.Context, c config.Config) (archive.Repo, error) {
	switch c.Storage.Driver {
	case "memory", "":
		return archive.NewDiscardRepo(), nil
	}
	return storage.OpenArchive(ctx, c)
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Play many seeded tournaments and report survival rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := startRequest(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		base, _ := cmd.Flags().GetInt64("seed-base")
		step, _ := cmd.Flags().GetInt64("seed-step")
		if count <= 0 {
			return fmt.Errorf("count must be positive, got %d", count)
		}
		if step == 0 {
			return fmt.Errorf("seed-step must not be 0")
		}

		ctx := cmd.Context()
		repo, err := batchArchive(ctx, config.C)
		if err != nil {
			return err
		}
		defer storage.Close()

		mgr := manager.NewGameManager(nil, repo)
		defer mgr.Close()

		// per-tournament logs would break the progress bar
		if logLevel == "" && config.C.Log.Level != "debug" {
			utils.Log.SetOutput(io.Discard)
			defer utils.SetOutput(cmd.ErrOrStderr())
		}

		var sum batchSummary
		bar := progressbar.Default(int64(count), "Tournaments")
		for i := 0; i < count; i++ {
			req.Seed = base + int64(i)*step
			res, err := mgr.Run(ctx, req)
			if err != nil {
				return fmt.Errorf("seed %d: %w", req.Seed, err)
			}
			sum.add(res)
			_ = bar.Add(1)
		}
		_ = bar.Finish()

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), sum.table())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addGameFlags(batchCmd)
	batchCmd.Flags().IntP("count", "n", 100, "number of tournaments")
	batchCmd.Flags().Int64("seed-base", 1, "seed of the first tournament")
	batchCmd.Flags().Int64("seed-step", 1, "seed increment between tournaments")
}

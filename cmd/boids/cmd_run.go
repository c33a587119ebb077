package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codegithubka/boids-interactive/internal/config"
	"github.com/codegithubka/boids-interactive/internal/session"
	"github.com/codegithubka/boids-interactive/pkg/boids"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a headless simulation and report flock metrics",
		Long: `Run a simulation for a fixed number of frames without rendering.

Parameters come from a config file or a named preset, with individual flag
overrides on top. With predators enabled the run reports predator-prey
metrics (distance to nearest predator, flock cohesion) at the end.

Examples:
  boids run --preset predator_chase --frames 2000
  boids run --config sim.json --seed 42 --json
  boids run --mode 3d --boids 150 --predators 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			preset, _ := cmd.Flags().GetString("preset")
			mode, _ := cmd.Flags().GetString("mode")
			seed, _ := cmd.Flags().GetUint64("seed")
			frames, _ := cmd.Flags().GetInt("frames")
			numBoids, _ := cmd.Flags().GetInt("boids")
			numPredators, _ := cmd.Flags().GetInt("predators")
			reportEvery, _ := cmd.Flags().GetInt("report-every")
			jsonOut, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if preset != "" {
				cfg.Preset = preset
			}
			if mode != "" {
				cfg.Mode = mode
			}
			if seed == 0 {
				seed = cfg.Seed
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			params, err := cfg.FlockParams()
			if err != nil {
				return err
			}
			if numBoids > 0 {
				params.NumBoids = numBoids
			}
			if numPredators > 0 {
				params.PredatorEnabled = true
				params.NumPredators = numPredators
			}
			params = params.Clamped()

			mgr, err := session.NewManager("run", cfg.Mode, params, seed, logger)
			if err != nil {
				return err
			}

			var collector boids.MetricsCollector
			start := time.Now()
			for i := 0; i < frames; i++ {
				fd := mgr.Step()
				if fd.Metrics != nil {
					collector.Record(*fd.Metrics)
				}
				if reportEvery > 0 && (i+1)%reportEvery == 0 {
					fields := []zap.Field{
						zap.Uint64("frame", mgr.Frame()),
						zap.Float64("fps", fd.FPS),
					}
					if fd.Metrics != nil {
						fields = append(fields,
							zap.Float64("cohesion", fd.Metrics.FlockCohesion),
							zap.Float64("avg_predator_distance", fd.Metrics.AvgDistanceToPredator),
						)
					}
					logger.Info("progress", fields...)
				}
			}
			elapsed := time.Since(start)
			summary := collector.Summarize()

			logger.Info("run complete",
				zap.Int("frames", frames),
				zap.Uint64("seed", seed),
				zap.Duration("elapsed", elapsed),
			)

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"mode":       mgr.Mode(),
					"seed":       seed,
					"frames":     frames,
					"elapsed_ms": elapsed.Milliseconds(),
					"params":     params,
					"metrics":    summary,
				})
			}

			fmt.Printf("Simulated %d frames (%s, seed %d) in %s\n", frames, mgr.Mode(), seed, elapsed.Round(time.Millisecond))
			if summary.NumFrames > 0 {
				fmt.Println("\nPredator-prey metrics:")
				fmt.Printf("  Avg distance to predator: %.2f ± %.2f\n", summary.MeanAvgDistance, summary.StdAvgDistance)
				fmt.Printf("  Min distance to predator: %.2f ± %.2f (overall %.2f)\n",
					summary.MeanMinDistance, summary.StdMinDistance, summary.OverallMinDistance)
				fmt.Printf("  Flock cohesion:           %.2f ± %.2f\n", summary.MeanCohesion, summary.StdCohesion)
			}
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a JSON config file")
	cmd.Flags().String("preset", "", "Parameter preset (see 'boids presets')")
	cmd.Flags().String("mode", "", "Simulation mode: 2d or 3d")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 = time-based)")
	cmd.Flags().Int("frames", 1000, "Number of frames to simulate")
	cmd.Flags().Int("boids", 0, "Override the boid count")
	cmd.Flags().Int("predators", 0, "Enable predators with this count")
	cmd.Flags().Int("report-every", 0, "Log progress every N frames (0 = never)")

	return cmd
}

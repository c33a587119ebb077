package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/codegithubka/boids-interactive/pkg/boids"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			if jsonOut {
				out := make(map[string]boids.Params, len(boids.PresetNames()))
				for _, name := range boids.PresetNames() {
					p, err := boids.Preset(name)
					if err != nil {
						return err
					}
					out[name] = p
				}
				return json.NewEncoder(os.Stdout).Encode(out)
			}

			fmt.Println("Available presets:")
			for _, name := range boids.PresetNames() {
				p, err := boids.Preset(name)
				if err != nil {
					return err
				}
				predator := "off"
				if p.PredatorEnabled {
					predator = "on"
				}
				fmt.Printf("  %-16s %3d boids, speed %.1f-%.1f, predator %s\n",
					name, p.NumBoids, p.MinSpeed, p.MaxSpeed, predator)
			}
			return nil
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List tunable parameters and their ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(boids.Limits)
			}

			names := make([]string, 0, len(boids.Limits))
			for name := range boids.Limits {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				a, b := boids.Limits[names[i]], boids.Limits[names[j]]
				if a.Category != b.Category {
					return a.Category < b.Category
				}
				return names[i] < names[j]
			})

			category := ""
			for _, name := range names {
				limit := boids.Limits[name]
				if limit.Category != category {
					category = limit.Category
					fmt.Printf("\n%s:\n", category)
				}
				fmt.Printf("  %-28s %-22s [%g, %g] default %g\n",
					name, limit.Label, limit.Min, limit.Max, limit.Default)
			}
			return nil
		},
	}
}

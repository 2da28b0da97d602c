package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/eatwell/nourish-cli/internal/model"
	"github.com/eatwell/nourish-cli/internal/pipeline"
)

var (
	planProfilePath string
	planDemo        bool
	planJSON        bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a shopping plan for one profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(planProfilePath, planDemo)
		if err != nil {
			return err
		}

		cat, err := newCatalog()
		if err != nil {
			return err
		}

		result := pipeline.New(cat).Run(profile)

		if planJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Print(pipeline.RenderReport(result))
		return nil
	},
}

// resolveProfile picks between a profile file and the built-in demo profile.
func resolveProfile(path string, demo bool) (model.Profile, error) {
	if demo {
		return demoProfile(), nil
	}
	if path == "" {
		return model.Profile{}, eris.New("either --profile or --demo is required")
	}
	return loadProfile(path)
}

func init() {
	planCmd.Flags().StringVar(&planProfilePath, "profile", "", "path to profile JSON")
	planCmd.Flags().BoolVar(&planDemo, "demo", false, "use the built-in sample profile")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "emit the full result as JSON")
	rootCmd.AddCommand(planCmd)
}

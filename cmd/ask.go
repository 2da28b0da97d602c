package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/assistant"
	"github.com/eatwell/nourish-cli/internal/pipeline"
	anthropicpkg "github.com/eatwell/nourish-cli/pkg/anthropic"
)

var (
	askProfilePath string
	askDemo        bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive session to explore a plan",
	Long:  "Runs the pipeline for a profile, then opens an interactive session: 'why <item>', 'explain <nutrient>', 'markers', 'budget', 'stores', or free-form questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(askProfilePath, askDemo)
		if err != nil {
			return err
		}

		cat, err := newCatalog()
		if err != nil {
			return err
		}

		result := pipeline.New(cat).Run(profile)

		var client anthropicpkg.Client
		if cfg.Anthropic.Key != "" {
			client = anthropicpkg.NewClient(cfg.Anthropic.Key)
		} else {
			zap.L().Info("no anthropic key configured, using canned responses")
		}
		asst := assistant.New(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)

		s := &session{
			result:    result,
			assistant: asst,
			in:        os.Stdin,
			out:       os.Stdout,
		}
		s.run(cmd.Context())
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askProfilePath, "profile", "", "path to profile JSON")
	askCmd.Flags().BoolVar(&askDemo, "demo", false, "use the built-in sample profile")
	rootCmd.AddCommand(askCmd)
}

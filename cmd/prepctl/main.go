// prepctl is a command-line client for the placement prep engine. It runs
// the same analysis pipeline as the API server against the configured KV
// store, so results are shared with a locally running server when both
// point at the same backend.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prep-backend/internal/history"
	"prep-backend/internal/jdfile"
	"prep-backend/internal/prep"
	"prep-backend/internal/progress"
	"prep-backend/internal/shared/config"
	"prep-backend/internal/shared/server"
)

type app struct {
	history  *history.Service
	prep     *prep.Service
	progress *progress.Service
}

func newApp() *app {
	cfg := config.Load()
	store := server.OpenStore(cfg)
	historySvc := history.New(store)
	return &app{
		history:  historySvc,
		prep:     prep.NewService(historySvc),
		progress: progress.New(store),
	}
}

func main() {
	root := &cobra.Command{
		Use:           "prepctl",
		Short:         "Analyze job descriptions and manage prep history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAnalyzeCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newConfidenceCmd(),
		newProgressCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var company, role, jdText, jdFile string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a full analysis on a job description and store the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jdText == "" && jdFile == "" {
				return fmt.Errorf("one of --jd or --jd-file is required")
			}
			if jdText != "" && jdFile != "" {
				return fmt.Errorf("--jd and --jd-file are mutually exclusive")
			}
			if jdFile != "" {
				text, err := jdfile.Read(jdFile)
				if err != nil {
					return err
				}
				jdText = text
			}
			if strings.TrimSpace(jdText) == "" {
				return fmt.Errorf("job description text is empty")
			}

			entry, err := newApp().prep.Analyze(context.Background(), company, role, jdText)
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&role, "role", "", "target role")
	cmd.Flags().StringVar(&jdText, "jd", "", "job description text")
	cmd.Flags().StringVar(&jdFile, "jd-file", "", "path to a job description file (.pdf or plain text)")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, skipped := newApp().history.Load(context.Background())
			if skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d corrupt entries dropped\n", skipped)
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %-20s base=%d final=%d  %s\n",
					entry.ID, truncate(entry.Company, 20), truncate(entry.Role, 20), entry.BaseScore, entry.FinalScore, entry.CreatedAt)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one stored analysis as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := newApp().history.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}
}

func newConfidenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confidence <id> <skill> <know|practice>",
		Short: "Set a skill's confidence on a stored analysis and rescore it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := prep.Confidence(args[2])
			if level != prep.ConfidenceKnow && level != prep.ConfidencePractice {
				return fmt.Errorf("level must be know or practice, got %q", args[2])
			}
			entry, err := newApp().history.SetSkillConfidence(context.Background(), args[0], args[1], level)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "final score: %d\n", entry.FinalScore)
			return nil
		},
	}
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the 8-step submission gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a := newApp()
			entries, _ := a.history.Load(ctx)
			status := a.progress.Status(ctx, len(entries))

			steps := []bool{status.Step1, status.Step2, status.Step3, status.Step4, status.Step5, status.Step6, status.Step7, status.Step8}
			for i, done := range steps {
				mark := " "
				if done {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d. %s\n", mark, i+1, progress.StepLabels[i])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shipped: %v\n", status.Shipped())
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

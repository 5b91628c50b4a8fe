package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/highlight"
	"github.com/veritext/veritext/internal/logging"
	"github.com/veritext/veritext/internal/render"
	"github.com/veritext/veritext/internal/workspace"
)

var analyzeJSON string

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <id>",
	Short: "Run fact-checking analysis on a document",
	Long: `Trigger a fact-checking run for the document, collect the flagged
sentences with their suggested corrections, and print the annotated
content followed by the suggestions.

Example:
  veritext analyze 42
  veritext analyze 42 --json report.json
  veritext analyze 42 --json -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "write a JSON report to this path ('-' for stdout)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	documentID, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}
	if _, _, err := requireUser(); err != nil {
		return err
	}

	cfg := loadConfig()
	if err := logging.Setup(cfg.Output.Verbose, ""); err != nil {
		return err
	}
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	doc, err := client.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing document %d: %s\n", doc.DocumentID, doc.Title)
	}

	analyzer := workspace.NewAnalyzer(client, cfg.Concurrency.CorrectionWorkers, logging.Component("analyzer"))
	working := workspace.NewWorkingCopy(doc)

	result, err := analyzer.Run(ctx, working)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON != "" {
		flagged := 0
		for _, a := range result.Analyses {
			if a.Flagged() {
				flagged++
			}
		}
		report := &render.Report{
			Document: *doc,
			Analyses: result.Analyses,
			Flagged:  flagged,
			RanAt:    result.CompletedAt.Format(time.RFC3339),
		}
		return render.WriteJSON(report, analyzeJSON)
	}

	styles := render.DefaultStyles()
	spans := highlight.Build(working.Content, result.Analyses, result.ActiveSentenceID)

	fmt.Println(styles.Heading.Render(doc.Title))
	fmt.Println()
	fmt.Println(render.Spans(spans, styles))
	fmt.Println()
	render.Suggestions(os.Stdout, result.Analyses, styles)

	return nil
}

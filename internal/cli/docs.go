package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/model"
)

var (
	docTitle    string
	docContent  string
	docFile     string
	docYes      bool
	docShowMeta bool
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage your documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a document's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

var docsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a document",
	Long: `Create a document from flags, a file, or stdin.

Example:
  veritext docs new --title "Draft" --content "First sentence."
  veritext docs new --title "Draft" --file notes.txt
  cat notes.txt | veritext docs new --title "Draft" --file -`,
	RunE: runDocsNew,
}

var docsSaveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Overwrite a document's title and content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsSave,
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsNewCmd)
	docsCmd.AddCommand(docsSaveCmd)
	docsCmd.AddCommand(docsDeleteCmd)

	docsNewCmd.Flags().StringVar(&docTitle, "title", "", "document title")
	docsNewCmd.Flags().StringVar(&docContent, "content", "", "document content")
	docsNewCmd.Flags().StringVar(&docFile, "file", "", "read content from file ('-' for stdin)")

	docsSaveCmd.Flags().StringVar(&docTitle, "title", "", "new title (keeps current when omitted)")
	docsSaveCmd.Flags().StringVar(&docContent, "content", "", "new content")
	docsSaveCmd.Flags().StringVar(&docFile, "file", "", "read content from file ('-' for stdin)")

	docsShowCmd.Flags().BoolVar(&docShowMeta, "meta", false, "include id and timestamps")

	docsDeleteCmd.Flags().BoolVar(&docYes, "yes", false, "skip confirmation")
}

func runDocsList(cmd *cobra.Command, args []string) error {
	user, _, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	docs, err := client.ListDocuments(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		fmt.Println("No documents yet. Create one with 'veritext docs new'.")
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		if updated := timeHint(doc.UpdatedAt); updated != "" {
			fmt.Printf("%6d  %-40s  %s\n", doc.DocumentID, title, updated)
		} else {
			fmt.Printf("%6d  %s\n", doc.DocumentID, title)
		}
	}
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	documentID, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}
	if _, _, err := requireUser(); err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	doc, err := client.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}

	if docShowMeta {
		fmt.Printf("id:      %d\n", doc.DocumentID)
		fmt.Printf("title:   %s\n", doc.Title)
		if created := timeHint(doc.CreatedAt); created != "" {
			fmt.Printf("created: %s\n", created)
		}
		if updated := timeHint(doc.UpdatedAt); updated != "" {
			fmt.Printf("updated: %s\n", updated)
		}
		fmt.Println()
	}
	fmt.Println(doc.Content)
	return nil
}

func runDocsNew(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(docTitle) == "" {
		return fmt.Errorf("--title is required")
	}
	content, err := resolveContent()
	if err != nil {
		return err
	}

	user, _, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	doc, err := client.CreateDocument(ctx, user.UserID, model.DocumentPayload{
		Title:   strings.TrimSpace(docTitle),
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	fmt.Printf("Created document %d: %s\n", doc.DocumentID, doc.Title)
	return nil
}

func runDocsSave(cmd *cobra.Command, args []string) error {
	documentID, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}
	if _, _, err := requireUser(); err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	// Start from the stored document so unset flags keep current values.
	current, err := client.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}

	payload := model.DocumentPayload{Title: current.Title, Content: current.Content}
	if strings.TrimSpace(docTitle) != "" {
		payload.Title = strings.TrimSpace(docTitle)
	}
	if docContent != "" || docFile != "" {
		content, err := resolveContent()
		if err != nil {
			return err
		}
		payload.Content = content
	}

	doc, err := client.UpdateDocument(ctx, documentID, payload)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	fmt.Printf("Saved document %d: %s\n", doc.DocumentID, doc.Title)
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	documentID, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}
	if !docYes {
		return fmt.Errorf("deletion is permanent: re-run with --yes to confirm")
	}
	if _, _, err := requireUser(); err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	if err := client.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	fmt.Printf("Deleted document %d.\n", documentID)
	return nil
}

func parseDocumentID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document id %q", raw)
	}
	return id, nil
}

// resolveContent picks the content source: --file (or stdin via '-') wins
// over --content.
func resolveContent() (string, error) {
	if docFile == "" {
		return docContent, nil
	}
	if docFile == "-" {
		data, err := readAllStdin()
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(docFile)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", docFile, err)
	}
	return string(data), nil
}

func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

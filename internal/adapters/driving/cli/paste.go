package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new document",
	Long: `Record a new empty document in history and print the server's
new-document URL. Use --open to start editing in the browser.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Publish text as a new document",
	Long: `Read text from --file or standard input, publish it and print its URL.
Saved documents are locked and cannot be changed.

Examples:
  echo 'hello' | haste save
  haste save --file main.go`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load [key]",
	Short: "Print a document",
	Long:  `Fetch a document by key ("abc123" or "abc123.py") and print its content.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [key]",
	Short: "Copy a document into a new one",
	Long:  `Fetch a locked document, publish its content as a new document and print the new URL.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

var rawCmd = &cobra.Command{
	Use:   "raw [key]",
	Short: "Print a document's plain text",
	Long: `Fetch the plain text of a document from the server's raw endpoint.
Use --url to print the raw URL or --open to open it in the browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

// Flags.
var (
	newOpen  bool
	saveFile string
	rawOpen  bool
	rawURL   bool
)

var errNoInput = errors.New("nothing to save: pipe text to haste save or use --file")

func init() {
	newCmd.Flags().BoolVar(&newOpen, "open", false, "Open the new-document page in the browser")
	saveCmd.Flags().StringVarP(&saveFile, "file", "f", "", "Read the document from a file")
	rawCmd.Flags().BoolVar(&rawOpen, "open", false, "Open the raw URL in the browser")
	rawCmd.Flags().BoolVar(&rawURL, "url", false, "Print the raw URL instead of the text")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(duplicateCmd)
	rootCmd.AddCommand(rawCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	session, _, err := openSession()
	if err != nil {
		return err
	}

	session.NewDocument(false)
	u := currentSettings().DocumentURL(session.State().Path)

	if newOpen {
		if opener == nil {
			return errors.New("no browser opener configured")
		}
		if err := opener.Open(u); err != nil {
			return fmt.Errorf("failed to open %s: %w", u, err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}

func runSave(cmd *cobra.Command, _ []string) error {
	content, err := readContent(cmd)
	if err != nil {
		return err
	}

	session, actions, err := openSession()
	if err != nil {
		return err
	}
	session.Editor().SetValue(content)

	if err := dispatch(cmd.Context(), session, actions, domain.ActionSave); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), currentSettings().DocumentURL(session.State().Path))
	return nil
}

// readContent reads the document from --file or a non-terminal stdin.
func readContent(cmd *cobra.Command) (string, error) {
	if saveFile != "" {
		data, err := os.ReadFile(saveFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", saveFile, err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	session, _, err := openSession()
	if err != nil {
		return err
	}

	payload, err := session.LoadDocument(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	printText(cmd, payload.Content)
	return nil
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	session, actions, err := openSession()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := session.LoadDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	if err := dispatch(ctx, session, actions, domain.ActionDuplicate); err != nil {
		return fmt.Errorf("failed to duplicate %s: %w", args[0], err)
	}
	if err := dispatch(ctx, session, actions, domain.ActionSave); err != nil {
		return fmt.Errorf("failed to save duplicate: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), currentSettings().DocumentURL(session.State().Path))
	return nil
}

func runRaw(cmd *cobra.Command, args []string) error {
	session, actions, err := openSession()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if rawURL || rawOpen {
		payload, err := session.LoadDocument(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		if rawOpen {
			return dispatch(ctx, session, actions, domain.ActionRaw)
		}
		fmt.Fprintln(cmd.OutOrStdout(), currentSettings().DocumentURL("/raw/"+payload.Key))
		return nil
	}

	text, err := session.Raw(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", args[0], err)
	}
	printText(cmd, text)
	return nil
}

// printText writes text to stdout with exactly one trailing newline.
func printText(cmd *cobra.Command, text string) {
	w := cmd.OutOrStdout()
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}

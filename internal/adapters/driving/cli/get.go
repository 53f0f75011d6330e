package cli

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [doc-name]",
	Short: "Fetch a document by name and print its HTML",
	Long: `Resolves the document name inside the configured folder, fetches it
and prints the rendered HTML to stdout. The name comparison is exact
and case-sensitive; if several documents share the name, the first one
the folder listing returns wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	app, err := buildApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	doc, err := app.document.FetchHTML(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Print(doc.HTML)
	return nil
}

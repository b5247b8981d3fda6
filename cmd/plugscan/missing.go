// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/catalog"
	"plugscan-cli/internal/issue"
)

var missingOut string

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Export curation templates for plugins without catalog metadata",
	Long: `Renders a YAML template record for every inventoried plugin that matched
no catalog entry, prefilled with the heuristic classification. Fill the
blanks and merge the records into the catalog document, then re-scan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory()
		if err != nil {
			return err
		}

		records := catalog.TemplateRecords(inv)
		if len(records) == 0 {
			fmt.Println(SuccessStyle.Render("Every inventoried plugin has curated metadata."))
			return nil
		}

		doc, err := catalog.MarshalTemplates(records)
		if err != nil {
			return issue.WrapWithOperation(err, "render curation templates")
		}

		if missingOut == "" {
			os.Stdout.Write(doc)
			return nil
		}
		if err := os.WriteFile(missingOut, doc, 0o644); err != nil {
			return issue.NewErrorContext().
				WithOperation("write curation templates").
				WithResource(missingOut).
				WithSuggestion("Check that the target directory exists and is writable").
				Wrap(err).
				BuildError()
		}
		fmt.Printf("%s %d templates to %s\n", SuccessStyle.Render("Exported"), len(records), missingOut)
		return nil
	},
}

func init() {
	missingCmd.Flags().StringVarP(&missingOut, "out", "o", "", "write templates to a file instead of stdout")
}

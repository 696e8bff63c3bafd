package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goearth/internal/sheet"
	"github.com/spf13/cobra"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank survey input sheet",
	Long: `Write an .xlsx survey template with the expected column headings and
one example row per cutting type. Fill it in and pass it to
'goearth volume -f'.

Examples:
  goearth template
  goearth template -o survey.xlsx`,
	Run: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "Sample.xlsx", "Template file to write")
}

func runTemplate(cmd *cobra.Command, args []string) {
	f, err := os.Create(templateOutput)
	if err != nil {
		fail(err)
	}
	if err := sheet.WriteTemplate(f); err != nil {
		f.Close()
		fail(err)
	}
	if err := f.Close(); err != nil {
		fail(err)
	}
	fmt.Printf("Template written to: %s\n", templateOutput)
}

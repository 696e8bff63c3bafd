package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goearth/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goearth",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goearth v%s\n", version.Version)
		fmt.Println("Roadway Cutting Earthwork Tool")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

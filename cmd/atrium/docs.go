package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/cli"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the manifest documentation",
	Long:  `Renders the manifest's markdown description for the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		admin, m, err := mountManifest(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer admin.Close()

		if m.Description == "" {
			fmt.Println("Manifest has no description.")
			return
		}

		out, err := cli.RenderMarkdown("# " + m.Title + "\n\n" + m.Description)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

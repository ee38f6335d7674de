package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/cli"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the navigation menu registered by a manifest",
	Long:  `Loads the admin manifest, registers its resources and routes in a menu registry, and prints the resulting hierarchical menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		admin, _, err := mountManifest(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer admin.Close()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(admin.Menu().Tree()); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		cli.NewPrinter(os.Stdout).PrintMenu(admin.Menu().Tree())
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().Bool("json", false, "Emit the menu tree as JSON")
}

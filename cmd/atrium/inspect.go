package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atriumhq/atrium"
	"github.com/atriumhq/atrium/internal/cli"
	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/pkg/manifest"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Classify a manifest and print the routing buckets",
	Long:  `Loads the admin manifest, classifies its element tree, and prints the resources, routes, and derived status.`,
	Run: func(cmd *cobra.Command, args []string) {
		admin, _, err := mountManifest(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer admin.Close()

		cli.NewPrinter(os.Stdout).PrintClassification(admin.Result())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// mountManifest loads the configured manifest (a positional argument takes
// precedence over the flag/config value) and mounts it on a fresh admin
// root.
func mountManifest(args []string) (*atrium.Admin, *manifest.Manifest, error) {
	path := viper.GetString("manifest")
	if len(args) > 0 {
		path = args[0]
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}

	admin := atrium.New(atrium.WithLogger(logging.ForCLI(viper.GetBool("verbose"))))
	admin.Mount(m.Elements...)
	return admin, m, nil
}

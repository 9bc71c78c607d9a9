package main

import (
	"fmt"
	"os"

	"github.com/planfab/goplan/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goplan",
	Short: "A CLI tool for rendering warehouse and sports-facility layouts",
	Long: `goplan renders layout project descriptors into 2D technical floor
plans and 3D isometric perspectives, and exports composed report
images. Project descriptors are YAML files describing the site,
the lighting configuration, and the placed objects.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

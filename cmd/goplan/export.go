package main

import (
	"fmt"
	"os"
	"time"

	"github.com/planfab/goplan/pkg/plan"
	"github.com/planfab/goplan/pkg/report"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportWidth  int
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Render a project report image",
	Long:  "Compose the report image (header, project data, observations, 2D floor plan, 3D perspective) and write it to disk.",
	Args:  cobra.ExactArgs(1),
	Run:   runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: derived from the project name)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 1000, "report width in pixels")
	exportCmd.Flags().StringVar(&exportFormat, "format", "png", "image format: png or qoi")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	project, err := plan.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		os.Exit(1)
	}

	output := exportOutput
	if output == "" {
		output = report.Filename(project.Name, exportFormat)
	}

	img := report.Compose(project, report.Options{
		Width: exportWidth,
		Date:  time.Now().Format("2006-01-02"),
	})
	if err := report.Save(output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report written to %s\n", output)
}

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/planfab/goplan/pkg/analysis"
	"github.com/planfab/goplan/pkg/plan"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display a summary of a layout project",
	Long:  "Show site dimensions, the object inventory, area utilization, and the computed lighting layout of a project descriptor.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	project, err := plan.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		os.Exit(1)
	}

	s := analysis.AnalyzeProject(project)

	fmt.Println("Layout Project Information")
	fmt.Println("==========================")
	if project.Name != "" {
		fmt.Printf("Name: %s\n", project.Name)
	}
	fmt.Printf("Domain: %s\n", project.Domain)
	fmt.Printf("File: %s\n\n", args[0])

	fmt.Println("Site:")
	fmt.Printf("  Width: %s\n", analysis.FormatMeters(project.Site.Width))
	fmt.Printf("  Length: %s\n", analysis.FormatMeters(project.Site.Length))
	if project.Site.CeilingHeight > 0 {
		fmt.Printf("  Ceiling height: %s\n", analysis.FormatMeters(project.Site.CeilingHeight))
	}
	fmt.Printf("  Area: %s\n\n", analysis.FormatArea(s.SiteArea))

	fmt.Println("Objects:")
	fmt.Printf("  Total: %d\n", s.ObjectCount)
	kinds := make([]plan.ObjectKind, 0, len(s.CountByKind))
	for kind := range s.CountByKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		fmt.Printf("  %s: %d\n", kind.DisplayName(), s.CountByKind[kind])
	}
	fmt.Printf("  Occupied area: %s (%.1f %% of site)\n", analysis.FormatArea(s.FootprintArea), s.UtilizationPct)
	if s.TallestPoint > 0 {
		fmt.Printf("  Tallest point: %s\n", analysis.FormatMeters(s.TallestPoint))
	}

	if project.Lighting.Active {
		fmt.Println("\nLighting:")
		fmt.Printf("  Orientation: %s\n", project.Lighting.Orientation)
		fmt.Printf("  Mode: %s (value %g, offset %s)\n",
			project.Lighting.Mode, project.Lighting.Value, analysis.FormatMeters(project.Lighting.Offset))
		fmt.Printf("  Profiles: %d\n", s.ProfileCount)
		fmt.Printf("  Luminaires: %d\n", s.FixtureCount)
	}
}

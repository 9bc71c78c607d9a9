package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planfab/goplan/pkg/plan"
	"github.com/planfab/goplan/pkg/report"
	"github.com/planfab/goplan/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-export the report whenever the project file changes",
	Long:  "Watch a project descriptor and regenerate the report image on every save, until interrupted.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output file (default: derived from the project name)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	input := args[0]

	render := func(path string) {
		project, err := plan.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
			return
		}

		output := watchOutput
		if output == "" {
			output = report.Filename(project.Name, "png")
		}

		img := report.Compose(project, report.Options{
			Date: time.Now().Format("2006-01-02"),
		})
		if err := report.Save(output, img); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			return
		}
		fmt.Printf("Report written to %s\n", output)
	}

	// Render once up front so the output exists before the first change.
	render(input)

	pw, err := watcher.New(input, 300*time.Millisecond, render)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer pw.Close()
	pw.Start()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", input)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

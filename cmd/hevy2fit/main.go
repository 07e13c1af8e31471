package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasjlepore/hevyfit/pipeline"
)

func main() {
	var (
		csvPath   = flag.String("csv", "", "Path to Hevy workout export CSV")
		outDir    = flag.String("out", "", "Output directory")
		lookup    = flag.String("lookup", "", "Path to exercise lookup table JSON")
		lookupURL = flag.String("lookup-url", "", "URL of exercise lookup table JSON (fallback when --lookup is unset or missing)")
		lastOnly  = flag.Bool("last-only", false, "Convert only the most recent workout")
		noSets    = flag.Bool("no-sets", false, "Skip workout_step and set messages")
		format    = flag.String("format", "csv", "Set table format: csv|parquet")
		overwrite = flag.Bool("overwrite", true, "Allow writing into non-empty output directories")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --csv workouts.csv --out outdir [--lookup table.json] [--last-only] [--format csv|parquet]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*csvPath) == "" || strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		CSVPath:         *csvPath,
		OutDir:          *outDir,
		LookupTablePath: *lookup,
		LookupTableURL:  *lookupURL,
		LastOnly:        *lastOnly,
		IncludeSets:     !*noSets,
		Format:          *format,
		Overwrite:       *overwrite,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hevy2fit failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("hevy2fit complete\n")
	fmt.Printf("Output dir:      %s\n", result.OutputDir)
	fmt.Printf("messages.jsonl:  %s\n", result.MessagesPath)
	fmt.Printf("manifest.json:   %s\n", result.ManifestPath)
	if result.SetsPath != "" {
		fmt.Printf("set table:       %s\n", result.SetsPath)
	}
	fmt.Printf("activities:      %d\n", result.ActivityCount)
	fmt.Printf("messages:        %d\n", result.MessageCount)
	fmt.Printf("sets:            %d\n", result.SetCount)
	for _, s := range result.SkippedErrors {
		fmt.Printf("skipped:         %s\n", s)
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dshills/langmerge/internal/config"
	"github.com/dshills/langmerge/internal/discover"
	"github.com/dshills/langmerge/internal/pipeline"
)

// Shared build flags
var (
	flagSourceRoots string
	flagOutDir      string
	flagOutputName  string
	flagManifest    string
	flagStrict      bool
	flagDryRun      bool
	flagDebug       bool
)

var buildCmd = &cobra.Command{
	Use:   "build [candidate...]",
	Short: "Merge translation files into the combined dictionary",
	Long: "Build resolves each candidate (a translation file, or a directory containing lang.json), " +
		"derives a namespace prefix from its path, and merges all keys into one sorted lang.json artifact.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		candidates := args
		if cfg.Manifest != "" {
			fromManifest, err := discover.LoadManifest(cfg.Manifest)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			candidates = append(fromManifest, candidates...)
		}

		report, err := pipeline.Run(candidates, cfg, pipeline.Options{DryRun: flagDryRun})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagDebug {
			fmt.Fprint(os.Stderr, spew.Sdump(report))
		}

		switch {
		case flagDryRun:
			fmt.Fprint(os.Stdout, string(report.Rendered))
		case report.Written:
			fmt.Fprintf(os.Stderr, "langmerge: wrote %d keys from %d files to %s\n",
				report.Keys, report.Merged, report.OutputPath)
		default:
			fmt.Fprintln(os.Stderr, "langmerge: no translation files found, nothing written")
		}

		if cfg.Strict && len(report.Collisions) > 0 {
			fmt.Fprintf(os.Stderr, "langmerge: %d key collision(s) with --strict\n", len(report.Collisions))
			exitCode = ExitCollisions
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&flagSourceRoots, "source-root", "", "Source root markers, most specific first (comma-separated)")
	buildCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Directory the combined dictionary is written to")
	buildCmd.Flags().StringVar(&flagOutputName, "output-name", "", "Filename of the combined dictionary")
	buildCmd.Flags().StringVar(&flagManifest, "manifest", "", "Manifest file listing candidates, one per line")
	buildCmd.Flags().BoolVar(&flagStrict, "strict", false, "Treat key collisions as a failure")
	buildCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the merged dictionary to stdout without writing")
	buildCmd.Flags().BoolVar(&flagDebug, "debug", false, "Dump the run report to stderr")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagSourceRoots != "" {
		m["sourceRoots"] = flagSourceRoots
	}
	if flagOutDir != "" {
		m["outDir"] = flagOutDir
	}
	if flagOutputName != "" {
		m["outputName"] = flagOutputName
	}
	if flagManifest != "" {
		m["manifest"] = flagManifest
	}
	if flagStrict {
		m["strict"] = "true"
	}
	return m
}

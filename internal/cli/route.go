package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/langmerge/internal/config"
	"github.com/dshills/langmerge/internal/langpath"
)

var routeCmd = &cobra.Command{
	Use:   "route <path...>",
	Short: "Show the namespace prefix derived for each path",
	Long: "Route normalizes each path against the configured source roots and prints the " +
		"namespace prefix the build would prepend to that file's keys.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		for _, arg := range args {
			logical, err := langpath.Normalize(arg, cfg.SourceRoots)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
				exitCode = ExitRuntimeError
				continue
			}
			route := langpath.Derive(logical)
			fmt.Fprintf(os.Stdout, "%s\t%s\n", arg, route.Prefix)
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().StringVar(&flagSourceRoots, "source-root", "", "Source root markers, most specific first (comma-separated)")
}

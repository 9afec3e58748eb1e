package pipeline

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/langmerge/internal/config"
	"github.com/dshills/langmerge/internal/discover"
	"github.com/dshills/langmerge/internal/langpath"
	"github.com/dshills/langmerge/internal/merge"
	"github.com/dshills/langmerge/internal/parse"
	"github.com/dshills/langmerge/internal/serialize"
)

// Options controls a single pipeline run.
type Options struct {
	// DryRun serializes the merged dictionary without writing the output file.
	DryRun bool
	// Log receives operator-visible diagnostics (skips, collisions, locale
	// warnings). Defaults to os.Stderr.
	Log io.Writer
}

// Skip records one artifact excluded from the merge and why.
type Skip struct {
	Path   string
	Reason string
}

// Report summarizes a completed run.
type Report struct {
	Discovered int
	Merged     int
	Keys       int
	Skipped    []Skip
	Collisions []merge.Collision
	Rendered   []byte
	OutputPath string
	Written    bool
}

// Run executes the full merge pipeline: resolve candidates, derive each
// artifact's logical path and namespace prefix, parse and merge its
// properties, then serialize the result and write it once.
//
// Per-artifact failures (unparseable content, unrecognized path) are logged
// and skipped; the rest of the batch continues. A discovery or write failure
// aborts the run. When zero artifacts are discovered no output file is
// produced and the run still succeeds.
func Run(candidates []string, cfg config.Config, opts Options) (*Report, error) {
	log := opts.Log
	if log == nil {
		log = os.Stderr
	}

	artifacts, err := discover.Resolve(candidates)
	if err != nil {
		return nil, fmt.Errorf("discovering artifacts: %w", err)
	}

	report := &Report{Discovered: len(artifacts)}
	if len(artifacts) == 0 {
		return report, nil
	}

	merged := merge.New()
	for _, artifact := range artifacts {
		logical, err := langpath.Normalize(artifact.Path, cfg.SourceRoots)
		if err != nil {
			report.skip(log, artifact.Path, fmt.Sprintf("unrecognized path: %v", err))
			continue
		}
		props, err := parse.Properties(artifact.Path, artifact.Data)
		if err != nil {
			report.skip(log, artifact.Path, err.Error())
			continue
		}
		route := langpath.Derive(logical)
		if route.Rule == langpath.RuleAssets {
			warnBadLocale(log, logical)
		}
		collisions := merge.AddProperties(merged, props, route.Prefix)
		report.Collisions = append(report.Collisions, collisions...)
		report.Merged++
	}

	sort.Slice(report.Collisions, func(i, j int) bool {
		return report.Collisions[i].Key < report.Collisions[j].Key
	})
	for _, c := range report.Collisions {
		fmt.Fprintf(log, "langmerge: key collision: %s overwritten (%q -> %q)\n", c.Key, c.Previous, c.Value)
	}

	rendered, err := serialize.Render(merged)
	if err != nil {
		return nil, err
	}
	report.Keys = len(merged)
	report.Rendered = rendered
	report.OutputPath = filepath.Join(cfg.OutDir, cfg.OutputName)

	if opts.DryRun {
		return report, nil
	}
	if err := serialize.WriteFile(report.OutputPath, merged); err != nil {
		return nil, err
	}
	report.Written = true
	return report, nil
}

func (r *Report) skip(log io.Writer, path, reason string) {
	r.Skipped = append(r.Skipped, Skip{Path: path, Reason: reason})
	fmt.Fprintf(log, "langmerge: skipping %s: %s\n", path, reason)
}

// warnBadLocale flags assets files whose names do not parse as a BCP 47 tag.
// Convention only, so the artifact still merges.
func warnBadLocale(log io.Writer, logical string) {
	base := path.Base(logical)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if _, err := langpath.LocaleTag(stem); err != nil {
		fmt.Fprintf(log, "langmerge: %s: %q is not a recognized locale tag\n", logical, stem)
	}
}

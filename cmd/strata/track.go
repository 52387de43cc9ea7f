package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/frontmatter"
)

var (
	trackMessage     string
	trackAuthor      string
	trackFrontmatter bool
)

var trackCmd = &cobra.Command{
	Use:   "track [paths...]",
	Short: "Start versioning one or more files",
	Long: `Record the current content of each file as version 1.
Arguments may be literal paths or doublestar glob patterns relative to
the store root, e.g. 'docs/**/*.md'.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		paths, err := expandPatterns(st.Root(), args)
		if err != nil {
			fatal("failed to expand patterns", err)
		}

		meta := buildMetadata(trackMessage, trackAuthor)
		for _, p := range paths {
			m := meta
			if trackFrontmatter {
				m = mergeFrontmatter(st.Root(), p, meta)
			}

			doc, err := st.Track(p, m)
			if err != nil {
				fatal(fmt.Sprintf("failed to track %s", p), err)
			}
			fmt.Printf("Tracked %s (version %d)\n", doc.Name, doc.CurrentVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().StringVarP(&trackMessage, "message", "m", "", "Message recorded in the version metadata")
	trackCmd.Flags().StringVarP(&trackAuthor, "author", "a", "", "Author recorded in the version metadata")
	trackCmd.Flags().BoolVar(&trackFrontmatter, "capture-frontmatter", false, "Merge top-level scalar YAML frontmatter fields into the version metadata")
}

// expandPatterns turns glob arguments into concrete root-relative paths.
// Arguments without glob metacharacters pass through untouched.
func expandPatterns(root string, args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(arg))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			out = append(out, filepath.FromSlash(m))
		}
	}
	return out, nil
}

// mergeFrontmatter reads the file's YAML frontmatter and merges its
// top-level scalar fields under the explicit flag metadata; flags win
// on conflicting keys.
func mergeFrontmatter(root, path string, flags map[string]string) map[string]string {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return flags
	}

	fm, _, err := frontmatter.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: skipping frontmatter of %s: %v\n", path, err)
		return flags
	}

	merged := frontmatter.Scalars(fm)
	if merged == nil {
		return flags
	}
	for k, v := range flags {
		merged[k] = v
	}
	return merged
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	updateMessage     string
	updateAuthor      string
	updateFrontmatter bool
	updateAll         bool
)

var updateCmd = &cobra.Command{
	Use:   "update [paths...]",
	Short: "Record a new version of tracked files that changed",
	Long: `Re-read each tracked file and record a new version if its content
changed. Unchanged files are reported as such; nothing is recorded for them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !updateAll {
			fmt.Fprintln(os.Stderr, "Error: provide paths or --all")
			cmd.Usage()
			os.Exit(1)
		}

		st := openStore()

		paths := args
		if updateAll {
			for _, summary := range st.List() {
				paths = append(paths, summary.Path)
			}
		}

		meta := buildMetadata(updateMessage, updateAuthor)
		failures := 0
		for _, p := range paths {
			m := meta
			if updateFrontmatter {
				m = mergeFrontmatter(st.Root(), p, meta)
			}

			v, changed, err := st.Update(p, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to update %s: %v\n", p, err)
				failures++
				continue
			}
			if !changed {
				fmt.Printf("No changes in %s\n", p)
				continue
			}
			fmt.Printf("Recorded %s version %d\n", p, v.Number)
		}

		if failures > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&updateMessage, "message", "m", "", "Message recorded in the version metadata")
	updateCmd.Flags().StringVarP(&updateAuthor, "author", "a", "", "Author recorded in the version metadata")
	updateCmd.Flags().BoolVar(&updateFrontmatter, "capture-frontmatter", false, "Merge top-level scalar YAML frontmatter fields into the version metadata")
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "Update every tracked document")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which tracked files changed on disk",
	Long: `Re-read every tracked file and compare it against its latest stored
version. A read failure on one file is reported for that file only.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		entries := st.Status()

		if statusJSON {
			type entryJSON struct {
				Path     string `json:"path"`
				Modified bool   `json:"modified"`
				Error    string `json:"error,omitempty"`
			}
			out := make([]entryJSON, 0, len(entries))
			for _, e := range entries {
				j := entryJSON{Path: e.Path, Modified: e.Modified}
				if e.Err != nil {
					j.Error = e.Err.Error()
				}
				out = append(out, j)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("failed to encode JSON", err)
			}
			return
		}

		if len(entries) == 0 {
			fmt.Println("No documents tracked.")
			return
		}

		for _, e := range entries {
			switch {
			case e.Err != nil:
				fmt.Printf("! %s  (%v)\n", e.Path, e.Err)
			case e.Modified:
				fmt.Printf("M %s\n", e.Path)
			default:
				fmt.Printf("  %s\n", e.Path)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked documents",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		summaries := st.List()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summaries); err != nil {
				fatal("failed to encode JSON", err)
			}
			return
		}

		if len(summaries) == 0 {
			fmt.Println("No documents tracked.")
			return
		}

		for _, s := range summaries {
			plural := "versions"
			if s.Versions == 1 {
				plural = "version"
			}
			fmt.Printf("%s  %d %s  last update %s\n",
				s.Path, s.Versions, plural, s.LastUpdate.Format("2006-01-02 15:04:05"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

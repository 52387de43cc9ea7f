package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "Show the full version history of a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()

		versions, err := st.History(args[0])
		if err != nil {
			fatal("failed to read history", err)
		}

		if historyJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(versions); err != nil {
				fatal("failed to encode JSON", err)
			}
			return
		}

		for _, v := range versions {
			line := fmt.Sprintf("v%-3d %s  %s", v.Number,
				v.Timestamp.Format("2006-01-02 15:04:05"), v.Hash[:12])
			if author, ok := v.Metadata["author"]; ok {
				line += "  " + author
			}
			if msg, ok := v.Metadata["message"]; ok {
				line += fmt.Sprintf("  %q", msg)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output in JSON format")
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var restoreOutput string

var restoreCmd = &cobra.Command{
	Use:   "restore [path] [version]",
	Short: "Write a stored version's content back to disk",
	Long: `Restore a document to the content of the given version number.
By default the document's own file is overwritten; --output writes
elsewhere and leaves the original untouched.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("invalid version number", err)
		}

		st := openStore()

		v, err := st.Restore(args[0], number, restoreOutput)
		if err != nil {
			fatal("failed to restore", err)
		}

		target := args[0]
		if restoreOutput != "" {
			target = restoreOutput
		}
		fmt.Printf("Restored %s to version %d\n", target, v.Number)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().StringVarP(&restoreOutput, "output", "o", "", "Write the restored content to this path instead of the original")
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a strata store",
	Long:  `Create the hidden .strata directory and an empty state file. Defaults to the current directory.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		} else if storeRoot != "" {
			dir = storeRoot
		}

		dir, err := filepath.Abs(dir)
		if err != nil {
			fatal("failed to resolve directory", err)
		}

		created, err := strata.Init(dir)
		if err != nil {
			fatal("failed to initialize store", err)
		}

		if created {
			fmt.Println("Initialized empty strata store in", dir)
		} else {
			fmt.Println("Store already initialized in", dir)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

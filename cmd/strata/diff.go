package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/strata/pkg/diff"
)

var diffUnified bool

var diffCmd = &cobra.Command{
	Use:   "diff [path] [version] [version]",
	Short: "Compare two versions of a document line by line",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("invalid version number", err)
		}
		b, err := strconv.Atoi(args[2])
		if err != nil {
			fatal("invalid version number", err)
		}

		st := openStore()

		if diffUnified {
			doc, err := st.Get(args[0])
			if err != nil {
				fatal("failed to diff", err)
			}
			va, err := doc.ByNumber(a)
			if err != nil {
				fatal("failed to diff", err)
			}
			vb, err := doc.ByNumber(b)
			if err != nil {
				fatal("failed to diff", err)
			}

			out, err := diff.Unified(va.Content, vb.Content,
				fmt.Sprintf("%s (v%d)", args[0], a),
				fmt.Sprintf("%s (v%d)", args[0], b),
				viper.GetInt("diff.context"))
			if err != nil {
				fatal("failed to render diff", err)
			}
			fmt.Print(out)
			return
		}

		lines, err := st.Diff(args[0], a, b)
		if err != nil {
			fatal("failed to diff", err)
		}

		for _, line := range lines {
			switch line.Op {
			case diff.Added:
				fmt.Printf("+ %s\n", line.Text)
			case diff.Removed:
				fmt.Printf("- %s\n", line.Text)
			default:
				fmt.Printf("  %s\n", line.Text)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVarP(&diffUnified, "unified", "u", false, "Render a unified diff instead of tagged lines")
}

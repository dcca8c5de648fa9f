package cmd

import (
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Print some info about tinytile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("A fork of tinywl with some additional features based on wlroots 0.16")
		cmd.Printf("tinytile %s\n", Version)
	},
}

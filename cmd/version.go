package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

var longVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of decochanges",
	Run: func(cmd *cobra.Command, args []string) {
		if longVersion {
			fmt.Printf("%s-%s\n", Version, Commit)
		} else {
			fmt.Println(Version)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&longVersion, "long", "l", false, "Show the long version")

	RootCmd.AddCommand(versionCmd)
}

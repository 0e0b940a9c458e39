// Version command for the onelogs CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oddworks/onelogs/pkg/onelogs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the onelogs version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("onelogs", onelogs.Version)
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// enzymesCmd lists the enzymes available for digestion, so a user who fails
// on a digest can see which names resolve.
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List enzymes available for restriction digestion",
	Long: `Lists every enzyme in the table by name with its recognition site and
cut offsets.

	<Name>	<Site>	<top/bottom cut>`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range enzymeDB.Names() {
			e := enzymeDB[name]
			fmt.Printf("%s\t%s\t%d/%d\n", e.Name, e.Site, e.TopCut, e.BottomCut)
		}
	},
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}

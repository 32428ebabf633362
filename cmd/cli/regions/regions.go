// Package regions prints the bundled location hierarchy and price reference
// data.
package regions

import (
	"fmt"
	"os"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/geodata"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "regions",
	Title: "Reference data",
}

var List = &cobra.Command{
	Use:     "regioes",
	GroupID: "regions",
	Short:   "List districts, concelhos, and freguesias",
	Long:    `Prints the location hierarchy with the price per square metre for each concelho`,
	Run: func(cmd *cobra.Command, args []string) {
		atlas, err := geodata.NewAtlas()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "load region dataset: %v\n", err)
			os.Exit(1)
		}
		prices, err := geodata.NewPriceTable()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "load price dataset: %v\n", err)
			os.Exit(1)
		}

		for _, region := range atlas.Regions() {
			fmt.Println(region)
			for _, subRegion := range atlas.SubRegions(region) {
				fmt.Printf("  %s (%.0f €/m²)\n", subRegion, prices.Lookup(subRegion))
				for _, localArea := range atlas.LocalAreas(region, subRegion) {
					fmt.Printf("    %s\n", localArea)
				}
			}
		}
	},
}

// Package estimate exposes the valuation model on the command line so that
// model changes can be sanity-checked without clicking through the wizard.
package estimate

import (
	"fmt"
	"os"
	"time"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/geodata"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/valuation"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "estimate",
	Title: "Valuation operations",
}

var flags = struct {
	kind        string
	livingArea  string
	totalArea   string
	floor       string
	layout      string
	year        string
	condition   string
	energyClass string
	elevator    bool
	balcony     bool
	garage      bool
	pool        bool
	garden      bool
	subRegion   string
}{} //nolint:exhaustruct

func init() {
	f := Estimate.Flags()
	f.StringVar(&flags.kind, "tipo", "", "property kind: house or apartment")
	f.StringVar(&flags.livingArea, "area-util", "", "living area in square metres")
	f.StringVar(&flags.totalArea, "area-total", "", "total area in square metres (houses)")
	f.StringVar(&flags.floor, "piso", "", "floor number (apartments)")
	f.StringVar(&flags.layout, "tipologia", "", "typology, e.g. T2 or T4+")
	f.StringVar(&flags.year, "ano", "", "construction year")
	f.StringVar(&flags.condition, "estado", "", "condition: good or needs_renovation")
	f.StringVar(&flags.energyClass, "classe", "", "energy certificate class, e.g. B-")
	f.BoolVar(&flags.elevator, "elevador", false, "has an elevator (apartments)")
	f.BoolVar(&flags.balcony, "varanda", false, "has a balcony (apartments)")
	f.BoolVar(&flags.garage, "garagem", false, "has a garage (apartments)")
	f.BoolVar(&flags.pool, "piscina", false, "has a pool (houses)")
	f.BoolVar(&flags.garden, "jardim", false, "has a garden (houses)")
	f.StringVar(&flags.subRegion, "concelho", "", "concelho used for the price per square metre")
	_ = Estimate.MarkFlagRequired("tipo")
	_ = Estimate.MarkFlagRequired("area-util")
}

func flag(set bool) wizard.Flag {
	if set {
		return wizard.FlagYes
	}
	return wizard.FlagNo
}

var Estimate = &cobra.Command{
	Use:     "estimar",
	GroupID: "estimate",
	Short:   "Estimate a property value",
	Long:    `Runs the valuation model against the given property characteristics`,
	Run: func(cmd *cobra.Command, args []string) {
		prices, err := geodata.NewPriceTable()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "load price dataset: %v\n", err)
			os.Exit(1)
		}

		answers := wizard.Answers{ //nolint:exhaustruct
			Kind:        wizard.Kind(flags.kind),
			LivingArea:  flags.livingArea,
			PlotArea:    flags.totalArea,
			Floor:       flags.floor,
			Layout:      flags.layout,
			Year:        flags.year,
			Condition:   wizard.Condition(flags.condition),
			EnergyClass: flags.energyClass,
			Elevator:    flag(flags.elevator),
			Balcony:     flag(flags.balcony),
			Garage:      flag(flags.garage),
			Pool:        flag(flags.pool),
			Garden:      flag(flags.garden),
			SubRegion:   flags.subRegion,
		}

		value := valuation.Estimate(answers, prices, time.Now().Year())
		if value == 0 {
			_, _ = fmt.Fprintln(os.Stderr, "no estimate: check that --tipo is house or apartment and --area-util is a number")
			os.Exit(1)
		}
		fmt.Printf("%d €\n", value)
	},
}

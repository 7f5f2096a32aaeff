package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/investcalc/calculators/internal/calculation"
)

// Prints exact and legacy lump-sum totals side by side with the year points
// they are derived from.
func main() {
	principal := flag.String("principal", "123456", "principal amount")
	rate := flag.String("rate", "7", "annual rate in percent")
	years := flag.Int("years", 5, "period in years")
	flag.Parse()

	p, err := decimal.NewFromString(*principal)
	if err != nil {
		log.Fatal(err)
	}
	r, err := decimal.NewFromString(*rate)
	if err != nil {
		log.Fatal(err)
	}

	opts := calculation.DefaultOptions()
	exact, err := calculation.NewProjectionEngineWithOptions(opts).ComputeLumpSum(p, r, *years)
	if err != nil {
		log.Fatal(err)
	}
	opts.LegacyRounding = true
	legacy, err := calculation.NewProjectionEngineWithOptions(opts).ComputeLumpSum(p, r, *years)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Year points (lakhs):")
	for _, yp := range exact.YearSeries {
		fmt.Printf("  %-4s investment=%s returns=%s\n", yp.Label, yp.Investment.StringFixed(2), yp.Returns.StringFixed(2))
	}
	fmt.Printf("Exact total returns:  %s\n", exact.TotalReturns.StringFixed(0))
	fmt.Printf("Legacy total returns: %s\n", legacy.TotalReturns.StringFixed(0))
	fmt.Printf("Difference:           %s\n", legacy.TotalReturns.Sub(exact.TotalReturns).StringFixed(0))
}

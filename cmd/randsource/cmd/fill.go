package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dyikot/randsource"
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Generate a vector of uniform numbers",
	Long: `Generate a vector of uniform numbers on one line, For example:
  randsource fill --count=10 --min=5 --max=5
  randsource fill --count=4 --real`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fillMin > fillMax {
			return fmt.Errorf("--min (%v) must not exceed --max (%v)", fillMin, fillMax)
		}
		if !fillReal && (!wholeNumber(fillMin) || !wholeNumber(fillMax)) {
			return fmt.Errorf("--min and --max must be whole numbers unless --real is set")
		}
		src := newSource()
		n := viper.GetInt("count")

		parts := make([]string, 0, n)
		if fillReal {
			for _, v := range randsource.Floats(src, n, fillMin, fillMax) {
				parts = append(parts, fmt.Sprint(v))
			}
		} else {
			for _, v := range randsource.Ints(src, n, int(fillMin), int(fillMax)) {
				parts = append(parts, fmt.Sprint(v))
			}
		}
		fmt.Println(strings.Join(parts, " "))
		return nil
	},
}

var (
	fillMin  float64
	fillMax  float64
	fillReal bool
)

// wholeNumber reports whether f has no fractional part.
func wholeNumber(f float64) bool {
	return f == math.Trunc(f)
}

func init() {
	rootCmd.AddCommand(fillCmd)

	flags := fillCmd.Flags()
	flags.Float64Var(&fillMin, "min", 0, "lower bound, inclusive")
	flags.Float64Var(&fillMax, "max", 100, "upper bound, inclusive")
	flags.BoolVar(&fillReal, "real", false, "draw from the real distribution instead of the integer one")
}

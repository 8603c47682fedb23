package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// floatCmd represents the float command
var floatCmd = &cobra.Command{
	Use:   "float",
	Short: "Generate uniform floats",
	Long: `Generate uniform floats in [min, max], one per line, For example:
  randsource float --min=0 --max=1 --count=3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if floatMin > floatMax {
			return fmt.Errorf("--min (%v) must not exceed --max (%v)", floatMin, floatMax)
		}
		src := newSource()
		for i := 0; i < viper.GetInt("count"); i++ {
			fmt.Println(src.NextFloat(floatMin, floatMax))
		}
		return nil
	},
}

var (
	floatMin float64
	floatMax float64
)

func init() {
	rootCmd.AddCommand(floatCmd)

	flags := floatCmd.Flags()
	flags.Float64Var(&floatMin, "min", 0, "lower bound, inclusive")
	flags.Float64Var(&floatMax, "max", 1, "upper bound, inclusive")
}

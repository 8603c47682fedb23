package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int",
	Short: "Generate uniform integers",
	Long: `Generate uniform integers in [min, max], one per line, For example:
  randsource int --min=1 --max=6 --count=5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if intMin > intMax {
			return fmt.Errorf("--min (%d) must not exceed --max (%d)", intMin, intMax)
		}
		src := newSource()
		for i := 0; i < viper.GetInt("count"); i++ {
			fmt.Println(src.NextInt(intMin, intMax))
		}
		return nil
	},
}

var (
	intMin int
	intMax int
)

func init() {
	rootCmd.AddCommand(intCmd)

	flags := intCmd.Flags()
	flags.IntVar(&intMin, "min", 0, "lower bound, inclusive")
	flags.IntVar(&intMax, "max", 100, "upper bound, inclusive")
}

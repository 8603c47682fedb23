package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dyikot/randsource"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "randsource",
	Short: "Random sampling utils.",
	Long: `Random sampling utils.
Generate uniform numbers, fill vectors, shuffle lines or pick random lines, For example:
  randsource int --min=1 --max=6 --count=5 --seed=42
  randsource float --min=0 --max=1
  randsource shuffle < names.txt
  randsource pick --count=3 < names.txt`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", 0, "engine seed, 0 seeds from entropy")
	flags.Int("count", 1, "number of values to produce")
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("count", flags.Lookup("count"))
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("randsource")
	viper.AutomaticEnv() // read in environment variables that match
}

// newSource builds the source every subcommand draws from.
func newSource() *randsource.Source {
	if seed := viper.GetInt64("seed"); seed != 0 {
		return randsource.New(randsource.WithSeed(seed))
	}
	return randsource.New()
}

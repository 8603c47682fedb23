package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dyikot/randsource"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick random lines from stdin",
	Long: `Read lines from stdin and print count of them, selected uniformly with
replacement, For example:
  randsource pick --count=3 < names.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(os.Stdin)
		if err != nil {
			return err
		}
		picked, err := randsource.Items(newSource(), lines, viper.GetInt("count"))
		if err != nil {
			return err
		}
		for _, line := range picked {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

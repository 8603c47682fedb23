package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyikot/randsource"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle lines from stdin",
	Long: `Read lines from stdin and print them in uniformly random order, For example:
  randsource shuffle < names.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(os.Stdin)
		if err != nil {
			return err
		}
		randsource.Shuffle(newSource(), lines)
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
}

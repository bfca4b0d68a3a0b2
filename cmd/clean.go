package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/algetutor/internal/sanitize"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [texto]",
	Short: "Sanitize LLM output for terminal display",
	Long: "Clean removes hidden reasoning blocks and markup from a model reply and " +
		"converts exponents to Unicode superscripts. Reads stdin when no argument is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(raw)
		}

		fmt.Println(sanitize.Sanitize(text))
		return nil
	},
}

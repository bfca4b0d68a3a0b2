package cmd

import (
	"fmt"

	"github.com/abhisek/algetutor/internal/grading"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <respuesta> <esperada>",
	Short: "Check whether two factored expressions are equivalent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, expected := args[0], args[1]

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Printf("respuesta: %s\n", grading.Normalize(answer))
			fmt.Printf("esperada:  %s\n", grading.Normalize(expected))
		}

		if grading.Equivalent(answer, expected) {
			fmt.Println(correctStyle.Render("Correcto"))
			return nil
		}
		fmt.Println(incorrectStyle.Render("Incorrecto"))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolP("verbose", "v", false, "Print the normalized form of each expression")
}

package cmd

import (
	"github.com/abhisek/algetutor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algetutor",
	Short: "Tutor de Algebra — quiz de álgebra con retroalimentación de un LLM",
	Long: "Algetutor hace preguntas de factorización en la terminal, califica las " +
		"respuestas por equivalencia algebraica y pide retroalimentación a un tutor LLM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ALGETUTOR_DB env var)")

	rootCmd.Flags().String("questions", "preguntas.json", "Path to the question file")
	rootCmd.Flags().String("prompts", "prompts.json", "Path to the prompt templates file (built-in defaults when absent)")
	rootCmd.Flags().String("llm-config", "llm_config.json", "Path to the LLM endpoint config (env config when absent)")
	rootCmd.Flags().IntP("count", "n", 2, "Number of questions to ask")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ALGETUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

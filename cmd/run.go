package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/algetutor/internal/feedback"
	"github.com/abhisek/algetutor/internal/llm"
	"github.com/abhisek/algetutor/internal/questions"
	"github.com/abhisek/algetutor/internal/session"
	"github.com/abhisek/algetutor/internal/store"
)

// runQuiz loads configuration, asks the sampled questions on stdin/stdout
// and finishes with tutor feedback.
func runQuiz(cmd *cobra.Command) error {
	questionsPath, _ := cmd.Flags().GetString("questions")
	promptsPath, _ := cmd.Flags().GetString("prompts")
	llmConfigPath, _ := cmd.Flags().GetString("llm-config")
	count, _ := cmd.Flags().GetInt("count")

	set, err := questions.Load(questionsPath)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	templates, err := loadTemplates(promptsPath)
	if err != nil {
		return fmt.Errorf("load prompts: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	genCfg := feedback.DefaultConfig()
	provider, llmCfg, err := buildProvider(ctx, llmConfigPath, &genCfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "La retroalimentación del tutor no estará disponible.")
	}

	sess := session.New(questions.Sample(set.Questions, count))

	if set.Title != "" {
		fmt.Println(titleStyle.Render(set.Title))
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for i, q := range sess.Questions {
		fmt.Printf("%d. %s\n", i+1, q.Statement)
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if sess.Submit(i, scanner.Text()) {
			fmt.Println(correctStyle.Render("Correcto"))
		} else {
			fmt.Println(incorrectStyle.Render("Incorrecto"))
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	correct, total := sess.Score()
	fmt.Printf("Resultado: %d/%d\n\n", correct, total)

	if provider == nil {
		return nil
	}

	fmt.Println(dimStyle.Render("Consultando al tutor..."))
	fbCtx, cancel := context.WithTimeout(ctx, llmCfg.Timeout)
	defer cancel()

	svc := feedback.NewService(provider, templates, genCfg)
	fmt.Println()
	fmt.Println(svc.Feedback(fbCtx, sess.Results()))
	return nil
}

// loadTemplates reads prompts.json, falling back to the built-in Spanish
// templates when the file does not exist.
func loadTemplates(path string) (feedback.Templates, error) {
	tpl, err := feedback.LoadTemplates(path)
	if errors.Is(err, fs.ErrNotExist) {
		return feedback.DefaultTemplates(), nil
	}
	return tpl, err
}

// buildProvider prefers llm_config.json when present and falls back to
// environment configuration. Generation settings from the file are copied
// into genCfg.
func buildProvider(ctx context.Context, path string, genCfg *feedback.Config, repo store.EventRepo) (llm.Provider, llm.Config, error) {
	fc, err := llm.LoadFileConfig(path)
	switch {
	case err == nil:
		cfg := fc.Apply(llm.ConfigFromEnv())
		genCfg.MaxTokens = fc.MaxTokens
		genCfg.Temperature = fc.Temperature
		p, err := llm.NewProvider(ctx, cfg, repo)
		return p, cfg, err
	case errors.Is(err, fs.ErrNotExist):
		cfg, err := llm.ResolveEnvConfig()
		if err != nil {
			return nil, cfg, err
		}
		p, err := llm.NewProvider(ctx, cfg, repo)
		return p, cfg, err
	default:
		return nil, llm.Config{}, err
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hirebyte/hr-assistant/internal/ai"
	"github.com/hirebyte/hr-assistant/internal/ai/gemini"
	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/engine"
	"github.com/hirebyte/hr-assistant/internal/i18n"
	"github.com/hirebyte/hr-assistant/internal/logger"
	"github.com/hirebyte/hr-assistant/internal/secrets"
	"github.com/hirebyte/hr-assistant/internal/server"
	"github.com/hirebyte/hr-assistant/internal/submit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat assistant and job catalog over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides server.port)")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve(_ *cobra.Command) {
	ctx := context.Background()

	// Local development convenience, absent .env files are fine.
	_ = godotenv.Load()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hr-assistant", zap.String("version", version))

	cat, err := catalog.Load(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading the job catalog", zap.Error(err))
	}
	logger.Info("job catalog loaded",
		zap.Int("postings", cat.Len()),
		zap.String("source", catalogSource(config.CatalogFile)),
	)

	assistant, hasKey := newAssistant(ctx, config.AI, logger)
	submitter := submit.NewLocal(logger)
	eng := engine.New(cat, assistant, submitter, logger)

	srv := server.New(eng, cat, submitter, server.Config{
		DefaultLocale: i18n.Match(config.DefaultLocale),
		HasAIKey:      hasKey,
	}, logger)

	if err := srv.Run(fmt.Sprintf(":%d", config.Server.Port)); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}

func catalogSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// newAssistant builds the freeform reply backend. Any configuration problem
// degrades to the disabled assistant instead of refusing to start, the chat
// keeps working without AI answers.
func newAssistant(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Assistant, bool) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("ai assistant is disabled")
		return ai.Disabled{}, false
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		logger.Warn("unsupported ai provider, disabling the assistant", zap.String("provider", cfg.Provider))
		return ai.Disabled{}, false
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		logger.Warn("disabling the ai assistant (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", zap.Error(err))
		return ai.Disabled{}, false
	}

	assistant, err := gemini.New(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength, logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	))
	if err != nil {
		logger.Warn("building the gemini assistant failed, disabling it", zap.Error(err))
		return ai.Disabled{}, false
	}

	return assistant, true
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/engine"
	"github.com/hirebyte/hr-assistant/internal/i18n"
	"github.com/hirebyte/hr-assistant/internal/logger"
	"github.com/hirebyte/hr-assistant/internal/submit"
)

const (
	cmdCancel = "/cancel"
	cmdQuit   = "/quit"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chat(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	cat, err := catalog.Load(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading the job catalog", zap.Error(err))
	}

	locale, err := selectLocale()
	if err != nil {
		logger.Fatal("selecting a language", zap.Error(err))
	}

	assistant, _ := newAssistant(ctx, config.AI, logger)
	eng := engine.New(cat, assistant, submit.NewLocal(logger), logger)
	state := engine.NewConversation(locale)

	renderEntries(state.MessageLog)
	fmt.Printf("(%s to abort an application, %s to leave)\n", cmdCancel, cmdQuit)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case cmdQuit:
			return
		case cmdCancel:
			renderEntries(eng.CancelFlow(state))
		case "":
			continue
		default:
			renderEntries(eng.HandleMessage(ctx, state, line))
		}
	}
}

func selectLocale() (i18n.Locale, error) {
	locales := i18n.Locales()
	items := make([]string, len(locales))
	for i, l := range locales {
		items[i] = l.Label
	}

	prompt := promptui.Select{
		Label: "Language",
		Items: items,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return i18n.Locale{}, err
	}
	return locales[idx], nil
}

func renderEntries(entries []engine.Entry) {
	for _, e := range entries {
		switch e.Kind {
		case engine.EntryJobs:
			for _, job := range e.Jobs {
				fmt.Printf("  * %s, %s (%s) [%s]\n", job.Title, job.Location, job.Type, job.ID)
			}
		default:
			fmt.Printf("assistant> %s\n", e.Text)
		}
	}
}

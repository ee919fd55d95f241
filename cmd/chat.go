package cmd

import (
	"context"
	"log"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the Nuvora career assistant without running an analysis",
	Run: func(_ *cobra.Command, _ []string) {
		chat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chat() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	advisor, err := newAdvisor(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the assistant",
			zap.Error(err),
			zap.String("hint", "enable the assistant under the ai section of the configuration file"),
		)
	}

	logger.Info("starting the assistant", zap.String("hint", "empty input exits"))

	if err := adviceLoop(ctx, advisor, nil); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

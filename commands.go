package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"eco_upcycle_generator/config"
	"eco_upcycle_generator/generator"
	"eco_upcycle_generator/server"
)

var (
	serveAddr string
	serveMock bool

	genItem   string
	genAPIKey string
	genMock   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form",
	RunE:  runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate [item]",
	Short: "Generate upcycle ideas for one item and print them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "http listen address (overrides config server_addr)")
	serveCmd.Flags().BoolVar(&serveMock, "mock", false, "use the offline mock model")

	generateCmd.Flags().StringVar(&genItem, "item", "", "name of the unwanted item")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "API key (default $GEMINI_API_KEY)")
	generateCmd.Flags().BoolVar(&genMock, "mock", false, "use the offline mock model")

	rootCmd.AddCommand(serveCmd, generateCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}
	provider, err := buildProvider(cfg, serveMock)
	if err != nil {
		return err
	}
	agent, err := generator.NewAgent(provider)
	if err != nil {
		return err
	}
	srv, err := server.New(agent, cfg, log.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Bool("mock", serveMock).
		Msg("starting upcycle generator")
	return srv.Run(ctx)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	item := genItem
	if item == "" && len(args) == 1 {
		item = args[0]
	}
	if item == "" {
		return errors.New("item name is required (--item or first argument)")
	}
	apiKey := genAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	provider, err := buildProvider(cfg, genMock)
	if err != nil {
		return err
	}
	agent, err := generator.NewAgent(provider)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout.Std())
	defer cancel()

	st, err := agent.Configure(ctx, generator.NewState(), apiKey)
	if err != nil {
		return err
	}
	log.Debug().Str("item", item).Msg("generating ideas")
	text, err := agent.Generate(ctx, st, item)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"eco_upcycle_generator/config"
	"eco_upcycle_generator/generator"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "upcycle",
	Short:         "Eco upcycle idea generator",
	Long:          "Suggests ten ways to upcycle an unwanted item, each with an eco-impact rating, using a generative text API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging(verbose)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("upcycle version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("UPCYCLE_CONFIG"), "path to config.toml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	_ = godotenv.Load()
	setupLogging(false)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug || os.Getenv("DEBUG") == "1" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// buildProvider picks the credential provider for cfg.LLM; mock forces the
// offline provider regardless of config.
func buildProvider(cfg config.Config, mock bool) (generator.Provider, error) {
	if mock || cfg.LLM.Provider == "mock" {
		return &generator.MockProvider{}, nil
	}
	return generator.NewOpenAIProviderFromConfig(&generator.LLMSettings{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		ValidateKey: cfg.LLM.ValidateKey,
	})
}

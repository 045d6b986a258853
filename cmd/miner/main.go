package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "Mine sentiment and topics from multilingual customer feedback",
	Long: `miner reads customer feedback from a CSV column, classifies each row as
Positive, Negative or Neutral and extracts short English "Aspect + Sentiment"
topics, whatever language the feedback is written in. Results are shown as a
console table and saved back to CSV.

The LLM backend is selected with LLM_BACKEND (openai, anthropic or ollama);
see .env.example for the full configuration surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		// Logs go to stderr so stdout stays clean for the results table.
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every prompt/response exchange")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chatCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManhLQ/sentiment-detection/pkg/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive QA session with the configured backend",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := llm.NewClientFromEnv()
	if err != nil {
		return err
	}

	fmt.Printf("Chatting with %s. Type 'exit' to end the conversation.\n", client.ModelName())

	var history []llm.ChatTurn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "exit", "quit", "finish":
			fmt.Println("Conversation ended.")
			return nil
		}

		answer, err := client.Chat(cmd.Context(), history, question)
		if err != nil {
			slog.Error("error answering question", "error", err)
			continue
		}

		history = append(history, llm.ChatTurn{Question: question, Answer: answer})
		fmt.Printf("Assistant: %s\n", answer)
	}
	return scanner.Err()
}

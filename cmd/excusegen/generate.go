package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ndelaney/excusegen/internal/config"
	"github.com/ndelaney/excusegen/internal/excuse"
	"github.com/ndelaney/excusegen/internal/llm"
)

var (
	genCategory    string
	genTone        string
	genSeriousness int
	genRecipient   string
	genSender      string
	genETA         string
	genJSON        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single excuse email",
	Long: `Generate one excuse email from the command line and print the
subject and body.

Examples:
  excusegen generate --category "Running Late" --tone formal \
    --seriousness 4 --recipient "Dr. Chen" --sender "Sam" \
    --eta "I expect to arrive by 3pm."`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genCategory, "category", "", "Excuse category (e.g. \"Running Late\")")
	generateCmd.Flags().StringVar(&genTone, "tone", "professional", "Tone of the email")
	generateCmd.Flags().IntVar(&genSeriousness, "seriousness", 3, "Seriousness level, 1 (silly) to 5 (very serious)")
	generateCmd.Flags().StringVar(&genRecipient, "recipient", "", "Recipient name")
	generateCmd.Flags().StringVar(&genSender, "sender", "", "Sender name")
	generateCmd.Flags().StringVar(&genETA, "eta", "", "ETA / timing information, included verbatim")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the response as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForGenerate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	req := excuse.Request{
		Category:      genCategory,
		Tone:          genTone,
		Seriousness:   genSeriousness,
		RecipientName: genRecipient,
		SenderName:    genSender,
		ETAWhen:       genETA,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	client := llm.New(llm.Config{
		EndpointURL: cfg.EndpointURL,
		Token:       cfg.APIToken,
	})

	slog.Info("calling serving endpoint", "endpoint", cfg.EndpointURL)
	reply, err := client.Complete(ctx, excuse.BuildPrompt(req))
	if err != nil {
		return fmt.Errorf("generate excuse: %w", err)
	}

	draft := excuse.Normalize(reply, req)

	if genJSON {
		out, err := json.MarshalIndent(excuse.Response{
			Subject: draft.Subject,
			Body:    draft.Body,
			Success: true,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println()
	fmt.Printf("Subject: %s\n", draft.Subject)
	fmt.Println()
	fmt.Println(draft.Body)
	return nil
}

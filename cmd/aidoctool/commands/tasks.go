package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilosource/aidoctool/internal/audit"
	"github.com/vilosource/aidoctool/internal/llm"
	"github.com/vilosource/aidoctool/internal/secret"
)

var flagConvertTo string

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a document",
	Long:  `Send a document to the active profile's LLM backend and print a summary.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document to another format",
	Long:  `Send a document to the active profile's LLM backend and print it converted to the requested format.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagConvertTo, "to", "", "target format (e.g. markdown, rst, html)")
	_ = convertCmd.MarkFlagRequired("to")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	prompt := "Summarize the following document. Be concise and keep the key points.\n\n" + string(content)
	return runTask("summarize", prompt)
}

func runConvert(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	prompt := fmt.Sprintf("Convert the following document to %s. Output only the converted document, with no commentary.\n\n%s",
		flagConvertTo, string(content))
	return runTask("convert", prompt)
}

// runTask is the shared task flow: resolve the active profile, resolve its
// provider, and invoke the generation capability with the prompt.
func runTask(task, prompt string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	profile, err := store.ResolveActive(profileName)
	if err != nil {
		return err
	}

	verboseLog("using profile %s (provider=%s model=%s)", profile.Name, profile.Provider, profile.Model)

	gen, err := registry.Resolve(profile.Provider, llm.Config{
		Model:  profile.Model,
		APIKey: secret.Resolve(profile.APIKey),
		Params: profile.Params,
	})
	if err != nil {
		return err
	}

	cfg, err := settings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Requests.Timeout)
	defer cancel()

	output, err := gen.Generate(ctx, prompt)
	if err != nil {
		auditLog(audit.EventError, profile.Name, profile.Provider, map[string]string{"task": task})
		return err
	}

	auditLog(audit.EventGenerate, profile.Name, profile.Provider, map[string]string{"task": task, "model": profile.Model})

	fmt.Println(output)
	return nil
}

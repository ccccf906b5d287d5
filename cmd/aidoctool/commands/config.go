package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vilosource/aidoctool/internal/audit"
	"github.com/vilosource/aidoctool/internal/secret"
	"github.com/vilosource/aidoctool/internal/validation"
	"github.com/vilosource/aidoctool/pkg/types"
)

var (
	flagProvider string
	flagModel    string
	flagAPIKey   string
	flagParams   []string
	flagYes      bool
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration profiles",
	Long: `Add, edit, delete, and inspect named LLM configuration profiles.

A profile bundles a provider, a model, an API key, and optional
provider parameters. The API key may be a literal value or an
environment reference such as ${OPENAI_API_KEY}, resolved when a task
runs.`,
}

var configAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new profile",
	Long: `Add a new configuration profile. The first profile ever added
becomes the default.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigAdd,
}

var configEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit an existing profile",
	Long:  `Update individual fields of an existing profile. Flags that are not given leave their field untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigEdit,
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a profile",
	Long: `Delete a configuration profile. Deleting the default profile
clears the default; set a new one with 'aidoctool config set-default'.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigDelete,
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default [name]",
	Short: "Set the default profile",
	Long:  `Set the profile used when no --profile flag is specified.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetDefault,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE:  runConfigList,
}

var configShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Long:  `Show a profile's configuration. The API key is always masked.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configDeleteCmd)
	configCmd.AddCommand(configSetDefaultCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configShowCmd)

	configAddCmd.Flags().StringVar(&flagProvider, "provider", "", "provider id (e.g. openai, anthropic, openrouter)")
	configAddCmd.Flags().StringVar(&flagModel, "model", "", "model name (e.g. gpt-4o, claude-sonnet-4-20250514)")
	configAddCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key, literal or ${ENV_VAR} reference")
	configAddCmd.Flags().StringArrayVar(&flagParams, "param", nil, "provider parameter as key=value (repeatable)")
	_ = configAddCmd.MarkFlagRequired("provider")
	_ = configAddCmd.MarkFlagRequired("model")
	_ = configAddCmd.MarkFlagRequired("api-key")

	configEditCmd.Flags().StringVar(&flagProvider, "provider", "", "provider id")
	configEditCmd.Flags().StringVar(&flagModel, "model", "", "model name")
	configEditCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key, literal or ${ENV_VAR} reference")
	configEditCmd.Flags().StringArrayVar(&flagParams, "param", nil, "provider parameter as key=value (replaces all params)")

	configDeleteCmd.Flags().BoolVar(&flagYes, "yes", false, "skip confirmation prompt")
}

func runConfigAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	v := validation.NewValidator()
	if err := v.ValidateProfileName(name); err != nil {
		return err
	}
	if err := v.ValidateProviderID(flagProvider); err != nil {
		return err
	}
	if err := v.ValidateModel(flagModel); err != nil {
		return err
	}
	if flagAPIKey == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	params, err := parseParams(flagParams)
	if err != nil {
		return err
	}

	store, err := newStore()
	if err != nil {
		return err
	}

	profile := types.Profile{
		Provider: flagProvider,
		Model:    flagModel,
		APIKey:   flagAPIKey,
		Params:   params,
	}

	if err := store.AddProfile(name, profile); err != nil {
		return err
	}

	auditLog(audit.EventProfileCreate, name, flagProvider, map[string]string{"model": flagModel})

	fmt.Printf("✓ Profile '%s' added\n", name)
	if store.DefaultProfile() == name {
		fmt.Printf("✓ Profile '%s' set as default\n", name)
	}
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	v := validation.NewValidator()

	var update types.ProfileUpdate
	changed := false

	if cmd.Flags().Changed("provider") {
		if err := v.ValidateProviderID(flagProvider); err != nil {
			return err
		}
		update.Provider = &flagProvider
		changed = true
	}
	if cmd.Flags().Changed("model") {
		if err := v.ValidateModel(flagModel); err != nil {
			return err
		}
		update.Model = &flagModel
		changed = true
	}
	if cmd.Flags().Changed("api-key") {
		if flagAPIKey == "" {
			return fmt.Errorf("api key cannot be empty")
		}
		update.APIKey = &flagAPIKey
		changed = true
	}
	if cmd.Flags().Changed("param") {
		params, err := parseParams(flagParams)
		if err != nil {
			return err
		}
		if params == nil {
			params = map[string]any{}
		}
		update.Params = params
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to edit: provide at least one of --provider, --model, --api-key, --param")
	}

	store, err := newStore()
	if err != nil {
		return err
	}

	if err := store.EditProfile(name, update); err != nil {
		return err
	}

	auditLog(audit.EventProfileUpdate, name, flagProvider, nil)

	fmt.Printf("✓ Profile '%s' updated\n", name)
	return nil
}

func runConfigDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := newStore()
	if err != nil {
		return err
	}

	if !flagYes {
		fmt.Printf("Are you sure you want to delete profile '%s'? This action cannot be undone.\n", name)
		fmt.Print("Type 'yes' to confirm: ")

		var confirm string
		fmt.Scanln(&confirm)
		if strings.ToLower(strings.TrimSpace(confirm)) != "yes" {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	wasDefault := store.DefaultProfile() == name

	if err := store.DeleteProfile(name); err != nil {
		return err
	}

	auditLog(audit.EventProfileDelete, name, "", nil)

	fmt.Printf("✓ Profile '%s' deleted\n", name)
	if wasDefault {
		fmt.Println("⚠️  Default profile cleared")
	}
	return nil
}

func runConfigSetDefault(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := newStore()
	if err != nil {
		return err
	}

	if err := store.SetDefault(name); err != nil {
		return err
	}

	auditLog(audit.EventDefaultChange, name, "", nil)

	fmt.Printf("✓ Default profile set to '%s'\n", name)
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	names := store.ListProfiles()
	if len(names) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("\nTo create a profile, run:")
		fmt.Println("  aidoctool config add <name> --provider <provider> --model <model> --api-key <key>")
		return nil
	}

	// Display profiles in a table
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tPROVIDER\tMODEL\tDEFAULT")
	fmt.Fprintln(w, "-------\t--------\t-----\t-------")

	for _, name := range names {
		profile, err := store.ResolveActive(name)
		if err != nil {
			return err
		}

		isDefault := ""
		if name == store.DefaultProfile() {
			isDefault = "✓"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, profile.Provider, profile.Model, isDefault)
	}
	w.Flush()

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := newStore()
	if err != nil {
		return err
	}

	profile, err := store.ResolveActive(name)
	if err != nil {
		return err
	}

	fmt.Printf("Profile: %s\n", profile.Name)
	fmt.Printf("Default: %v\n", profile.Name == store.DefaultProfile())
	fmt.Printf("Provider: %s\n", profile.Provider)
	fmt.Printf("Model: %s\n", profile.Model)
	fmt.Printf("API Key: %s\n", secret.Mask(profile.APIKey))

	if len(profile.Params) > 0 {
		fmt.Println("\nParameters:")
		for _, key := range sortedKeys(profile.Params) {
			fmt.Printf("  %s: %v\n", key, profile.Params[key])
		}
	}

	return nil
}

// parseParams turns repeated key=value flags into a params mapping. Values
// are coerced to bool, int, or float when they parse as one, matching what
// the YAML document would produce.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", pair)
		}
		params[key] = coerceParamValue(value)
	}
	return params, nil
}

func coerceParamValue(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

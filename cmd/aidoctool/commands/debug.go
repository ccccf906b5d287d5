package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vilosource/aidoctool/internal/config"
	"github.com/vilosource/aidoctool/internal/secret"
	"github.com/vilosource/aidoctool/internal/storage"
	"github.com/vilosource/aidoctool/pkg/types"
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug and troubleshooting commands",
}

var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the current configuration",
	Long: `Dump the active configuration document and where it came from.
API keys are always masked.`,
	RunE: runDebugConfig,
}

var debugInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display system and environment information",
	RunE:  runDebugInfo,
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugConfigCmd)
	debugCmd.AddCommand(debugInfoCmd)
}

func runDebugConfig(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	doc, err := store.Load()
	if err != nil {
		return err
	}

	dump, err := dumpDocument(doc)
	if err != nil {
		return err
	}
	fmt.Printf("Current configuration:\n%s", dump)

	configPath := filepath.Join(config.GetConfigDir(), storage.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file found at: %s\n", configPath)
	} else {
		fmt.Printf("Config file not found at: %s\n", configPath)
	}
	fmt.Printf("Config directory: %s\n", config.GetConfigDir())

	return nil
}

func runDebugInfo(cmd *cobra.Command, args []string) error {
	fmt.Println("System Information:")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if cwd, err := os.Getwd(); err == nil {
		fmt.Printf("Working directory: %s\n", cwd)
	}

	vars := aidoctoolEnv()
	if len(vars) == 0 {
		fmt.Println("No AIDOCTOOL environment variables found.")
		return nil
	}
	fmt.Println("AIDOCTOOL environment variables:")
	for _, v := range vars {
		fmt.Printf("  %s\n", v)
	}

	return nil
}

// dumpDocument renders the document as YAML with every API key masked. The
// masked copy never carries secret material, so the dump is safe to share
// in a bug report.
func dumpDocument(doc *types.Document) (string, error) {
	if len(doc.Profiles) == 0 && doc.DefaultProfile == "" {
		return "No configuration found.\n", nil
	}

	masked := doc.Clone()
	for _, p := range masked.Profiles {
		p.APIKey = secret.Mask(p.APIKey)
	}

	data, err := yaml.Marshal(masked)
	if err != nil {
		return "", fmt.Errorf("failed to format configuration: %w", err)
	}
	return string(data), nil
}

// aidoctoolEnv lists the AIDOCTOOL_* environment variables in sorted
// order, masking any whose name marks it as an API key.
func aidoctoolEnv() []string {
	var vars []string
	for _, entry := range os.Environ() {
		name, value, _ := strings.Cut(entry, "=")
		if !strings.HasPrefix(name, "AIDOCTOOL_") {
			continue
		}
		if strings.Contains(name, "API_KEY") {
			value = secret.Mask(value)
		}
		vars = append(vars, name+"="+value)
	}
	sort.Strings(vars)
	return vars
}

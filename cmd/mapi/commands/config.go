package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/excelsior-io/mapi-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	PublicKey  string `json:"public_key,omitempty"  yaml:"public-key,omitempty"`
	PrivateKey string `json:"private_key,omitempty" yaml:"private-key,omitempty"`
	BaseURL    string `json:"base_url,omitempty"    yaml:"base-url,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
	AutoQuery  bool   `json:"auto_query,omitempty"  yaml:"auto-query,omitempty"`
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the mapi CLI configuration stored in ~/.mapi/config.yml",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetKeysCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long:  "Show the effective configuration with the private key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.PrivateKey != "" {
				config.PrivateKey = "***"
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncodable(config, output)
			}

			return renderTable([]string{"Key", "Value"}, [][]string{
				{"public-key", stringOrDefault(config.PublicKey)},
				{"private-key", stringOrDefault(config.PrivateKey)},
				{"base-url", stringOrDefault(config.BaseURL)},
				{"output", stringOrDefault(config.Output)},
				{"auto-query", fmt.Sprintf("%t", config.AutoQuery)},
			})
		},
	}
}

func newConfigSetKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-keys PUBLIC_KEY",
		Short: "Store API keys",
		Long:  "Store the developer portal key pair; the private key is prompted for and never echoed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.PublicKey = args[0]

			_, _ = os.Stdout.WriteString("Private key (leave empty to keep current): ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			_, _ = os.Stdout.WriteString("\n")

			if err != nil {
				return fmt.Errorf("reading private key: %w", err)
			}

			if len(keyBytes) > 0 {
				config.PrivateKey = string(keyBytes)
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Keys saved\n")

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: base-url, output, auto-query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			switch key {
			case "base-url":
				config.BaseURL = value
			case "output":
				config.Output = value
			case "auto-query":
				config.AutoQuery = value == "true"
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".mapi", "config.yml"), nil
}

// loadConfig reads the config file, falling back to an empty config when it
// does not exist.
func loadConfig() *Config {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

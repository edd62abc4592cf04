package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// ConfigDirName is the directory under $HOME holding config.yml.
const ConfigDirName = ".outseta"

// Config represents the CLI configuration.
type Config struct {
	Domain      string `json:"domain,omitempty"       yaml:"domain,omitempty"`
	BaseURL     string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	APIKey      string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	APISecret   string `json:"api_secret,omitempty"   yaml:"api_secret,omitempty"`
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	ClientID    string `json:"client_id,omitempty"    yaml:"client_id,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"   yaml:"user_agent,omitempty"`
	Timeout     string `json:"timeout,omitempty"      yaml:"timeout,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
	Debug       bool   `json:"debug,omitempty"        yaml:"debug,omitempty"`
	RequestIDs  bool   `json:"request_ids,omitempty"  yaml:"request_ids,omitempty"`
}

// configKeys maps each settable key to its setter.
var configKeys = map[string]func(*Config, string) error{
	"domain":       stringField(func(c *Config) *string { return &c.Domain }),
	"base_url":     stringField(func(c *Config) *string { return &c.BaseURL }),
	"api_key":      stringField(func(c *Config) *string { return &c.APIKey }),
	"api_secret":   stringField(func(c *Config) *string { return &c.APISecret }),
	"access_token": stringField(func(c *Config) *string { return &c.AccessToken }),
	"client_id":    stringField(func(c *Config) *string { return &c.ClientID }),
	"user_agent":   stringField(func(c *Config) *string { return &c.UserAgent }),
	"timeout": func(c *Config, v string) error {
		if v != "" {
			_, err := parseTimeout(v)
			if err != nil {
				return err
			}
		}

		c.Timeout = v

		return nil
	},
	"output": func(c *Config, v string) error {
		switch v {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = v

			return nil
		default:
			return fmt.Errorf("%w: %q", constants.ErrUnknownOutput, v)
		}
	},
	"debug":       boolSetter(func(c *Config, b bool) { c.Debug = b }),
	"request_ids": boolSetter(func(c *Config, b bool) { c.RequestIDs = b }),
}

func stringField(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*field(c) = v

		return nil
	}
}

func boolSetter(set func(*Config, bool)) func(*Config, string) error {
	return func(c *Config, v string) error {
		if v == "" {
			set(c, false)

			return nil
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing boolean %q: %w", v, err)
		}

		set(c, b)

		return nil
	}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Outseta CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()

			return render(cmd, config, func(table *Table) {
				table.Header("Setting", "Value")

				for _, row := range config.rows() {
					table.Row(row[0], row[1])
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeyNames(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all configuration",
		Long:  "Remove every stored setting and credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "This removes all stored credentials. Re-run with --force to confirm.")

				return nil
			}

			err := saveConfigStruct(&Config{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "clear without confirmation")

	return cmd
}

// loadConfig returns the effective configuration: config file, environment
// and flags merged by viper.
func loadConfig() *Config {
	return &Config{
		Domain:      viper.GetString("domain"),
		BaseURL:     viper.GetString("base_url"),
		APIKey:      viper.GetString("api_key"),
		APISecret:   viper.GetString("api_secret"),
		AccessToken: viper.GetString("access_token"),
		ClientID:    viper.GetString("client_id"),
		UserAgent:   viper.GetString("user_agent"),
		Timeout:     viper.GetString("timeout"),
		Output:      viper.GetString("output"),
		Debug:       viper.GetBool("debug"),
		RequestIDs:  viper.GetBool("request_ids"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	set, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	return set(config, value)
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for name := range configKeys {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// configFilePath returns the file config is read from, or the default
// location under the home directory.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	for key, value := range config.values() {
		viper.Set(key, value)
	}

	return nil
}

func (c *Config) values() map[string]interface{} {
	return map[string]interface{}{
		"domain":       c.Domain,
		"base_url":     c.BaseURL,
		"api_key":      c.APIKey,
		"api_secret":   c.APISecret,
		"access_token": c.AccessToken,
		"client_id":    c.ClientID,
		"user_agent":   c.UserAgent,
		"timeout":      c.Timeout,
		"output":       c.Output,
		"debug":        c.Debug,
		"request_ids":  c.RequestIDs,
	}
}

func (c *Config) masked() *Config {
	out := *c
	out.APISecret = maskSecret(c.APISecret)
	out.AccessToken = maskSecret(c.AccessToken)

	return &out
}

func (c *Config) rows() [][]string {
	return [][]string{
		{"Domain", orNotAvailable(c.Domain)},
		{"Base URL", orNotAvailable(c.BaseURL)},
		{"API Key", orNotAvailable(c.APIKey)},
		{"API Secret", orNotAvailable(c.APISecret)},
		{"Access Token", orNotAvailable(c.AccessToken)},
		{"Client ID", orNotAvailable(c.ClientID)},
		{"User Agent", orNotAvailable(c.UserAgent)},
		{"Timeout", orNotAvailable(c.Timeout)},
		{"Output", orNotAvailable(c.Output)},
		{"Debug", formatBool(c.Debug)},
		{"Request IDs", formatBool(c.RequestIDs)},
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	return constants.MaskedSecret
}

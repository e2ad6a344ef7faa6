package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/treepick/internal/utils"
)

const (
	// ConfigFileName is the per-project configuration file.
	ConfigFileName = ".treepick.yaml"
	// GlobalConfigDirectoryName holds the global configuration beneath the home directory.
	GlobalConfigDirectoryName = ".config/treepick"
	// GlobalConfigFileName is the global configuration file name.
	GlobalConfigFileName = "config.yaml"

	// DefaultOutputFileName receives the concatenated artifact under the scanned root.
	DefaultOutputFileName = "concatenated_output.txt"
	// DefaultTreeFileName is the tree snapshot prepended to the artifact when present.
	DefaultTreeFileName = "tree.txt"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Ignore IgnoreDefaultsConfiguration `mapstructure:"ignore"`
	Pick   PickConfiguration           `mapstructure:"pick"`
}

// IgnoreDefaultsConfiguration overrides the built-in ignore pattern defaults.
type IgnoreDefaultsConfiguration struct {
	Defaults []string `mapstructure:"defaults"`
}

// PickConfiguration defines defaults for the pick command.
type PickConfiguration struct {
	OutputFileName string              `mapstructure:"output_file"`
	TreeFileName   string              `mapstructure:"tree_file"`
	Clipboard      *bool               `mapstructure:"clipboard"`
	Tokens         TokensConfiguration `mapstructure:"tokens"`
}

// TokensConfiguration controls token counting defaults.
type TokensConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from the global and local files,
// local values overriding global ones. Missing files are not an error.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := filepath.Join(workingDirectory, ConfigFileName)
	localConfiguration, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	merged.Ignore.Defaults = utils.DeduplicatePatterns(merged.Ignore.Defaults)

	return merged, nil
}

// EffectiveIgnoreDefaults returns the configured default ignore patterns,
// falling back to the built-in list when none are configured.
func (configuration ApplicationConfiguration) EffectiveIgnoreDefaults() []string {
	if len(configuration.Ignore.Defaults) > 0 {
		return append([]string(nil), configuration.Ignore.Defaults...)
	}
	return DefaultIgnorePatterns()
}

// EffectiveOutputFileName returns the configured artifact file name or the default.
func (configuration ApplicationConfiguration) EffectiveOutputFileName() string {
	if configuration.Pick.OutputFileName != "" {
		return configuration.Pick.OutputFileName
	}
	return DefaultOutputFileName
}

// EffectiveTreeFileName returns the configured tree snapshot name or the default.
func (configuration ApplicationConfiguration) EffectiveTreeFileName() string {
	if configuration.Pick.TreeFileName != "" {
		return configuration.Pick.TreeFileName
	}
	return DefaultTreeFileName
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if len(override.Ignore.Defaults) > 0 {
		result.Ignore.Defaults = append([]string{}, override.Ignore.Defaults...)
	}
	result.Pick = result.Pick.merge(override.Pick)
	return result
}

func (configuration PickConfiguration) merge(override PickConfiguration) PickConfiguration {
	result := configuration
	if override.OutputFileName != "" {
		result.OutputFileName = override.OutputFileName
	}
	if override.TreeFileName != "" {
		result.TreeFileName = override.TreeFileName
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (configuration TokensConfiguration) merge(override TokensConfiguration) TokensConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

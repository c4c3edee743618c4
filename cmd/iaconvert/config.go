// Config loading for the iaconvert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyCollection = "collection"
	cfgKeySubjects   = "subjects"
	cfgKeyLogLevel   = "log_level"
	cfgKeyLogFormat  = "log_format"

	defaultCollection = "Densho"
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
)

// defaultSubjects are the subject headings applied to every output row. The
// third subject slot is derived per entity, not configured.
var defaultSubjects = []string{"Japanese Americans", "Oral history"}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# iaconvert configuration

# IA collection bucket for items that are not interview segments
# (segments are bucketed under their interview identifier).
collection: Densho

# Fixed subject headings applied to every output row.
subjects:
  - Japanese Americans
  - Oral history

# Logging (overridable by --log-level / --log-format).
log_level: info
log_format: console
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyCollection, defaultCollection)
	v.SetDefault(cfgKeySubjects, defaultSubjects)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

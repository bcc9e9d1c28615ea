// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-pdf/pkg/types"
)

const envPrefix = "EXTRACT_PDF"

// flagKeys maps command-line flags to their config keys.
var flagKeys = map[string]string{
	"backend":        "backend",
	"page-separator": "page_separator",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// loadConfig resolves the extraction config from, in order of precedence,
// flags, EXTRACT_PDF_* environment variables, the yaml config file, and
// built-in defaults.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (types.ExtractionConfig, error) {
	setDefaults(v, types.DefaultExtractionConfig())

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return types.ExtractionConfig{}, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(programName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", programName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.ExtractionConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.ExtractionConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.ExtractionConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can find nested settings
// during Unmarshal.
func setDefaults(v *viper.Viper, d types.ExtractionConfig) {
	v.SetDefault("backend", string(d.Backend))
	v.SetDefault("page_separator", d.PageSeparator)
	v.SetDefault("pdftotext.binary", d.Pdftotext.Binary)
	v.SetDefault("pdftotext.layout", d.Pdftotext.Layout)
	v.SetDefault("markitdown.image", d.Markitdown.Image)
	v.SetDefault("pdfium.instance_timeout", d.PDFium.InstanceTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

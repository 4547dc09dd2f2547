/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PROJECT_NAME = "LedgerLite ATM"
	DEFAULT_PRECISION    = 2
	MAX_PRECISION        = 8
	DEFAULT_LOG_LEVEL    = "warn"
	DEFAULT_LOG_FORMAT   = "text"
	DEFAULT_MAX_DISTANCE = 2
)

var ConfigStore atomic.Value

type LogConfig struct {
	Level  string `json:"level" envconfig:"LEDGERLITE_LOG_LEVEL"`
	Format string `json:"format" envconfig:"LEDGERLITE_LOG_FORMAT"`
}

// SuggestionConfig drives the "did you mean" hint shown when an account id
// is not found.
type SuggestionConfig struct {
	Enabled     *bool `json:"enabled" envconfig:"LEDGERLITE_SUGGESTIONS_ENABLED"`
	MaxDistance *int  `json:"max_distance" envconfig:"LEDGERLITE_SUGGESTIONS_MAX_DISTANCE"`
}

type Configuration struct {
	ProjectName string           `json:"project_name" envconfig:"LEDGERLITE_PROJECT_NAME"`
	Precision   *int32           `json:"precision" envconfig:"LEDGERLITE_PRECISION"`
	Log         LogConfig        `json:"log"`
	Suggestions SuggestionConfig `json:"suggestions"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "opening config file %s", file)
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return errors.Wrapf(err, "decoding config file %s", file)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables and defaults")
	}

	// override config from environment variables
	err = envconfig.Process("ledgerlite", &cnf)
	if err != nil {
		return errors.Wrap(err, "reading environment overrides")
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Call InitConfig before using the ledger")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Log.Level = strings.ToLower(strings.TrimSpace(cnf.Log.Level))
	cnf.Log.Format = strings.ToLower(strings.TrimSpace(cnf.Log.Format))

	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}

	if cnf.Precision == nil {
		precision := int32(DEFAULT_PRECISION)
		cnf.Precision = &precision
	}
	if *cnf.Precision < 0 || *cnf.Precision > MAX_PRECISION {
		return errors.Errorf("precision must be between 0 and %d", MAX_PRECISION)
	}

	if cnf.Log.Level == "" {
		cnf.Log.Level = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.Log.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	switch cnf.Log.Format {
	case "":
		cnf.Log.Format = DEFAULT_LOG_FORMAT
	case "text", "json":
	default:
		return errors.Errorf("unsupported log format %q, use text or json", cnf.Log.Format)
	}

	if cnf.Suggestions.Enabled == nil {
		enabled := true
		cnf.Suggestions.Enabled = &enabled
	}
	if cnf.Suggestions.MaxDistance == nil {
		maxDistance := DEFAULT_MAX_DISTANCE
		cnf.Suggestions.MaxDistance = &maxDistance
		log.Printf("Warning: suggestion distance not specified. Setting default value: %d", maxDistance)
	}
	if *cnf.Suggestions.MaxDistance < 0 {
		return errors.New("suggestions max distance must not be negative")
	}

	return nil
}

// PrecisionOrDefault is safe to call on a configuration that skipped
// validateAndAddDefaults, e.g. one installed with MockConfig.
func (cnf *Configuration) PrecisionOrDefault() int32 {
	if cnf == nil || cnf.Precision == nil {
		return DEFAULT_PRECISION
	}
	return *cnf.Precision
}

func (cnf *Configuration) SuggestionsEnabled() bool {
	if cnf == nil || cnf.Suggestions.Enabled == nil {
		return true
	}
	return *cnf.Suggestions.Enabled
}

func (cnf *Configuration) SuggestionDistance() int {
	if cnf == nil || cnf.Suggestions.MaxDistance == nil {
		return DEFAULT_MAX_DISTANCE
	}
	return *cnf.Suggestions.MaxDistance
}

// ConfigureLogger applies the log level and format to the standard logrus logger.
func (cnf *Configuration) ConfigureLogger() {
	level, err := logrus.ParseLevel(cnf.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cnf.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}

// Copyright 2025 The homesweep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads homesweep defaults from YAML.
package config

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yml
var defaultConfig []byte

type Config struct {
	ParentPath       string   `yaml:"parent_path"`
	EmptyDirectories string   `yaml:"empty_directories"`
	Prompt           bool     `yaml:"prompt"`
	CheckOwner       bool     `yaml:"check_owner"`
	IgnoreSIDs       []string `yaml:"ignore_sids"`
}

// NewConfig decodes c on top of base. Keys absent from c keep the value from
// base; a nil base starts from zero values.
func NewConfig(base *Config, c []byte) (*Config, error) {
	var config Config
	if base != nil {
		config = *base
		config.IgnoreSIDs = slices.Clone(base.IgnoreSIDs)
	}
	if err := yaml.Unmarshal(c, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func DefaultConfig() (*Config, error) {
	return NewConfig(nil, defaultConfig)
}

// Load returns the default configuration overlaid with the file at path.
// An empty path returns the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	config, err := DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	if path == "" {
		return config, nil
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	config, err = NewConfig(config, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

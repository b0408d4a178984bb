// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
type StructuredJSONConfig struct {
	Profile string `json:"profile"`
	Key     string `json:"key"`

	Files struct {
		Config      string `json:"config"`
		Credentials string `json:"credentials"`
	} `json:"files,omitempty"`

	Output struct {
		LogLevel string `json:"log_level"`
		Explain  bool   `json:"explain"`
		Copy     bool   `json:"copy"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Profile: jsonCfg.Profile,
		Key:     jsonCfg.Key,
		Files: Files{
			Config:      jsonCfg.Files.Config,
			Credentials: jsonCfg.Files.Credentials,
		},
		Output: Output{
			LogLevel: jsonCfg.Output.LogLevel,
			Explain:  jsonCfg.Output.Explain,
			Copy:     jsonCfg.Output.Copy,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

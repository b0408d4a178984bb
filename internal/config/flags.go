// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// FlagSetName is the name reported in usage messages.
const FlagSetName = "resolver"

// parseFlags parses args into a partial configuration. A single positional
// argument is accepted as the key. flag.ErrHelp is returned as is for -h.
//
// Boolean flags given explicitly on the command line are also returned as
// pins, so that -explain=false can switch off a value set by another source.
func parseFlags(args []string) (*StructuredConfig, []func(*StructuredConfig), error) {
	var (
		profileName     string
		key             string
		configFile      string
		credentialsFile string
		logLevel        string
		explain         bool
		copyValue       bool
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.StringVar(&profileName, "p", "", "Profile to start from, replaces AWS_PROFILE")
	fs.StringVar(&profileName, "profile", "", "Profile to start from (alias)")
	fs.StringVar(&key, "k", "", "Setting to resolve (default \"region\")")
	fs.StringVar(&key, "key", "", "Setting to resolve (alias)")
	fs.StringVar(&configFile, "config-file", "", "Shared config file path, replaces AWS_CONFIG_FILE")
	fs.StringVar(&credentialsFile, "credentials-file", "", "Shared credentials file path, replaces AWS_SHARED_CREDENTIALS_FILE")
	fs.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fs.BoolVar(&explain, "explain", false, "Print the visited profile chain")
	fs.BoolVar(&copyValue, "copy", false, "Copy the resolved value to the clipboard")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var pins []func(*StructuredConfig)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "explain":
			v := explain
			pins = append(pins, func(c *StructuredConfig) { c.Output.Explain = v })
		case "copy":
			v := copyValue
			pins = append(pins, func(c *StructuredConfig) { c.Output.Copy = v })
		}
	})

	switch fs.NArg() {
	case 0:
	case 1:
		if key != "" && key != fs.Arg(0) {
			return nil, nil, fmt.Errorf("%w: key given both as flag and argument", ErrUnexpectedArguments)
		}
		key = fs.Arg(0)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnexpectedArguments, fs.Args()[1:])
	}

	return &StructuredConfig{
		Profile: profileName,
		Key:     key,
		Files: Files{
			Config:      configFile,
			Credentials: credentialsFile,
		},
		Output: Output{
			LogLevel: logLevel,
			Explain:  explain,
			Copy:     copyValue,
		},
		JSONFilePath: jsonConfigPath,
	}, pins, nil
}

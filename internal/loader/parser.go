// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"maps"
	"strings"

	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"gopkg.in/ini.v1"
)

// profilePrefix introduces named profiles in the configuration file.
const profilePrefix = "profile"

// rawProfiles maps a profile name to its properties.
type rawProfiles map[string]map[string]string

// fileKind tells the two profile file dialects apart.
type fileKind int

const (
	configFile fileKind = iota
	credentialsFile
)

func (k fileKind) String() string {
	if k == credentialsFile {
		return "credentials"
	}
	return "config"
}

func loadINI(data []byte, kind fileKind, log *logger.Logger) (*ini.File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowNestedValues:        true,
		IgnoreContinuation:       true,
		PreserveSurroundedQuote:  true,
		SpaceBeforeInlineComment: true,
		KeyValueDelimiters:       "=",
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigFile, err)
	}

	keys := f.Section(ini.DefaultSection).Keys()
	if len(keys) == 0 {
		return f, nil
	}

	// ini.v1 folds a literal [DEFAULT] header into the section that also
	// collects properties written before the first header.
	stray, hasDefaultHeader := scanPreamble(data)
	if stray {
		return nil, fmt.Errorf("%w: %q", ErrPropertyOutsideProfile, keys[0].Name())
	}
	if hasDefaultHeader {
		log.Warn().
			Str("file", kind.String()).
			Str("section", ini.DefaultSection).
			Msg("ignoring section that does not declare a profile")
	}

	return f, nil
}

// scanPreamble reports whether a property appears before the first section
// header and whether any header is literally [DEFAULT].
func scanPreamble(data []byte) (stray, hasDefaultHeader bool) {
	inSection := false
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			inSection = true
			if end := strings.LastIndexByte(line, ']'); end > 0 &&
				strings.TrimSpace(line[1:end]) == ini.DefaultSection {
				hasDefaultHeader = true
			}
			continue
		}

		if !inSection {
			stray = true
		}
	}
	return stray, hasDefaultHeader
}

// parseFile parses data according to kind. Sections that do not declare a
// valid profile are skipped with a warning.
func parseFile(data []byte, kind fileKind, log *logger.Logger) (rawProfiles, error) {
	f, err := loadINI(data, kind, log)
	if err != nil {
		return nil, err
	}

	profiles := make(rawProfiles)
	var bareDefault map[string]string

	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		name, prefixed, ok := sectionProfileName(section.Name(), kind)
		if !ok {
			log.Warn().
				Str("file", kind.String()).
				Str("section", section.Name()).
				Msg("ignoring section that does not declare a profile")
			continue
		}
		if !validProfileName(name) {
			log.Warn().
				Str("file", kind.String()).
				Str("profile", name).
				Msg("ignoring profile with invalid name")
			continue
		}

		props := sectionProperties(section)

		// [default] only applies when there is no [profile default]
		if kind == configFile && name == profile.DefaultProfileName && !prefixed {
			if bareDefault == nil {
				bareDefault = make(map[string]string)
			}
			maps.Copy(bareDefault, props)
			continue
		}

		if existing, ok := profiles[name]; ok {
			maps.Copy(existing, props)
			continue
		}
		profiles[name] = props
	}

	if bareDefault != nil {
		if _, ok := profiles[profile.DefaultProfileName]; ok {
			log.Warn().Msg("both [default] and [profile default] are defined, using [profile default]")
		} else {
			profiles[profile.DefaultProfileName] = bareDefault
		}
	}

	return profiles, nil
}

// sectionProfileName extracts the profile name from a section header.
// prefixed reports whether the "profile " prefix was used.
func sectionProfileName(section string, kind fileKind) (name string, prefixed bool, ok bool) {
	if kind == credentialsFile {
		name = strings.TrimSpace(section)
		return name, false, name != ""
	}

	fields := strings.Fields(section)
	switch {
	case len(fields) == 1 && fields[0] == profile.DefaultProfileName:
		return fields[0], false, true
	case len(fields) == 2 && fields[0] == profilePrefix:
		return fields[1], true, true
	default:
		return "", false, false
	}
}

func sectionProperties(section *ini.Section) map[string]string {
	keys := section.Keys()
	props := make(map[string]string, len(keys))
	for _, k := range keys {
		name := strings.TrimSpace(k.Name())
		if name == "" {
			continue
		}
		props[name] = strings.TrimSpace(k.Value())
	}
	return props
}

// validProfileName reports whether name only uses characters allowed in
// profile names: letters, digits and _-/.%@:+
func validProfileName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-/.%@:+", r):
		default:
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import "slices"

// Outcome describes why a resolution walk stopped.
//
// Outcomes are diagnostics only. Callers that only need the value should use
// [Resolve], which collapses every outcome other than [OutcomeFound] into
// "not found".
type Outcome int

const (
	// OutcomeUnknown is the zero value. It is reported when no walk took
	// place, for example because the profile files could not be loaded.
	OutcomeUnknown Outcome = iota
	// OutcomeFound means a profile on the chain defines the key.
	OutcomeFound
	// OutcomeEmptySet means the profile set has no profiles at all.
	OutcomeEmptySet
	// OutcomeProfileNotFound means the starting profile or a source_profile
	// target does not exist.
	OutcomeProfileNotFound
	// OutcomeKeyNotFound means the chain ended without defining the key.
	OutcomeKeyNotFound
	// OutcomeSelfReference means a profile names itself as source_profile.
	OutcomeSelfReference
	// OutcomeCycle means the chain returned to an already visited profile.
	OutcomeCycle
)

// String returns a short, log friendly name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnknown:
		return "unknown"
	case OutcomeFound:
		return "found"
	case OutcomeEmptySet:
		return "empty profile set"
	case OutcomeProfileNotFound:
		return "profile not found"
	case OutcomeKeyNotFound:
		return "key not found"
	case OutcomeSelfReference:
		return "self reference"
	case OutcomeCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Resolution is the detailed result of a resolution walk.
type Resolution struct {
	// Key is the requested setting.
	Key string
	// Value is the resolved value; empty unless Outcome is OutcomeFound.
	Value string
	// Outcome tells why the walk stopped.
	Outcome Outcome
	// Profile is the profile name the walk stopped at. It is empty for
	// OutcomeEmptySet.
	Profile string
	// Visited lists the profiles inspected, in order.
	Visited []string
}

// Found reports whether a value was resolved.
func (r Resolution) Found() bool {
	return r.Outcome == OutcomeFound
}

// Resolve returns the effective value of key.
//
// The walk starts at *override when override is non-nil, otherwise at the
// selected profile of set, and follows source_profile links until a profile
// defines key. Empty sets, missing profiles, self references and cycles all
// produce ("", false). Resolve never fails and always terminates: with N
// profiles in the set it performs at most N+1 lookups.
func Resolve(set *ProfileSet, override *string, key string) (string, bool) {
	r := Explain(set, override, key)
	return r.Value, r.Found()
}

// Explain performs the same walk as [Resolve] and reports how it ended.
func Explain(set *ProfileSet, override *string, key string) Resolution {
	if set.IsEmpty() {
		return Resolution{Key: key, Outcome: OutcomeEmptySet}
	}

	current := set.SelectedProfile()
	if override != nil {
		current = *override
	}

	var visited []string
	stop := func(outcome Outcome) Resolution {
		return Resolution{Key: key, Outcome: outcome, Profile: current, Visited: visited}
	}

	for {
		p, ok := set.GetProfile(current)
		if !ok {
			return stop(OutcomeProfileNotFound)
		}

		if slices.Contains(visited, current) {
			return stop(OutcomeCycle)
		}
		visited = append(visited, current)

		value, hasKey := p.Get(key)
		source, hasSource := p.SourceProfile()

		switch {
		case hasKey:
			r := stop(OutcomeFound)
			r.Value = value
			return r
		case !hasSource:
			return stop(OutcomeKeyNotFound)
		case source == current:
			// the next iteration would report a cycle anyway
			return stop(OutcomeSelfReference)
		default:
			current = source
		}
	}
}

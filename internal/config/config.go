// Copyright 2026 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diffable.Option.
package config

// Scope describes the scope in which item identities are de-duplicated.
type Scope int

const (
	// ScopeSnapshot de-duplicates item identities across the whole snapshot: an identity may
	// appear in at most one section.
	ScopeSnapshot Scope = iota

	// ScopeSection de-duplicates item identities within their owning section only: the same
	// identity may appear in different sections.
	ScopeSection
)

func (s Scope) String() string {
	switch s {
	case ScopeSnapshot:
		return "snapshot"
	case ScopeSection:
		return "section"
	default:
		return "unknown"
	}
}

// Config collects all configurable parameters for snapshots in this module.
type Config struct {
	// Scope in which item identities are de-duplicated.
	Scope Scope
}

// Default is the default configuration.
var Default = Config{
	Scope: ScopeSnapshot,
}

// Flag describes a single config entry. This is used to detect if options are being set that are
// not allowed for an operation.
type Flag int

const (
	PerSectionItems Flag = 1 << iota
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case PerSectionItems:
		return "diffable.PerSectionItems"
	default:
		panic("never reached")
	}
}

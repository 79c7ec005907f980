// Package mapcfg loads eager-load mapping profiles from configuration
// files, so the property pairs a program registers at startup can live
// in YAML next to the rest of its settings instead of in code.
//
// A configuration names properties as "Type.Field" references. Because
// a file cannot carry Go type information, references are resolved
// against a [Types] set the program registers its entity types in.
package mapcfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/go-eager/eager"
)

// EnvPrefix is the prefix of environment variables that override file
// settings, e.g. EAGER_MAX_RECURSION_LEVEL.
const EnvPrefix = "EAGER_"

// Config is the file representation of a set of mapping profiles.
type Config struct {
	// MaxRecursionLevel overrides eager.MaxRecursionLevel when > 0.
	MaxRecursionLevel int `koanf:"max_recursion_level"`

	// Profiles maps a profile name to its property pairs.
	Profiles map[string][]MappingDef `koanf:"profiles"`
}

// MappingDef is one property pair within a profile.
type MappingDef struct {
	From Ref `koanf:"from"`
	To   Ref `koanf:"to"`
}

// Load reads a YAML configuration file and applies EAGER_* environment
// overrides on top of it.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("reading env overrides: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return c, nil
}

// Apply registers every mapping in c into reg, resolving references
// through types. When c sets MaxRecursionLevel it also updates
// [eager.MaxRecursionLevel]. The first resolution or registration
// error aborts the application; the registry keeps whatever was added
// before it.
func (c Config) Apply(reg *eager.Registry, types *Types) error {
	if c.MaxRecursionLevel > 0 {
		eager.MaxRecursionLevel = c.MaxRecursionLevel
	}

	for _, profile := range sortedProfiles(c.Profiles) {
		for _, def := range c.Profiles[profile] {
			from, err := def.From.Resolve(types)
			if err != nil {
				return fmt.Errorf("profile %q: %w", profile, err)
			}

			to, err := def.To.Resolve(types)
			if err != nil {
				return fmt.Errorf("profile %q: %w", profile, err)
			}

			if err := reg.AddMapping(from, to, profile); err != nil {
				return err
			}
		}
	}

	return nil
}

// Lint checks a configuration for problems that are detectable without
// Go type information: malformed references, a property reference
// appearing in more than one mapping of a profile, and profiles with
// no mappings. Findings are returned one per line, ordered by profile.
func (c Config) Lint() []string {
	var findings []string

	for _, profile := range sortedProfiles(c.Profiles) {
		defs := c.Profiles[profile]
		if len(defs) == 0 {
			findings = append(findings,
				fmt.Sprintf("profile %q has no mappings", profile))
			continue
		}

		seen := map[Ref]bool{}
		for _, def := range defs {
			for _, ref := range []Ref{def.From, def.To} {
				if _, _, err := ref.Parse(); err != nil {
					findings = append(findings,
						fmt.Sprintf("profile %q: %v", profile, err))
					continue
				}

				if seen[ref] {
					findings = append(findings, fmt.Sprintf(
						"profile %q: %s appears in more than one mapping",
						profile, ref))
				}
				seen[ref] = true
			}
		}
	}

	return findings
}

func sortedProfiles(profiles map[string][]MappingDef) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

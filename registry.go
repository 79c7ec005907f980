package eager

// Mapping associates two property identities. It is stored in the
// order it was registered but looked up from either side.
type Mapping struct {
	A, B Property
}

// Contains reports whether either side of m is p.
func (m Mapping) Contains(p Property) bool {
	return m.A.Is(p) || m.B.Is(p)
}

// Counterpart returns the side of m opposite to p. The second return
// is false when p is on neither side.
func (m Mapping) Counterpart(p Property) (Property, bool) {
	switch {
	case m.A.Is(p):
		return m.B, true
	case m.B.Is(p):
		return m.A, true
	default:
		return Property{}, false
	}
}

// Registry holds named profiles of property mappings.
//
// A Registry is meant to be populated during a single-threaded
// initialization phase and only read afterwards. It does no internal
// locking: writing (AddMapping, RemoveMappingsFor, RemoveProfile)
// while other goroutines read is a precondition violation.
type Registry struct {
	profiles map[string][]Mapping
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: map[string][]Mapping{}}
}

// profileName returns the single optional profile argument, falling
// back to [DefaultProfile].
func profileName(profile []string) string {
	if len(profile) > 0 && profile[0] != "" {
		return profile[0]
	}

	return DefaultProfile
}

// AddMapping registers a and b as counterparts of each other in the
// given profile (default [DefaultProfile]). The profile is created on
// first use. If either property already participates in any mapping of
// that profile, a [*DuplicateMappingError] is returned and the profile
// is left unchanged.
func (r *Registry) AddMapping(a, b Property, profile ...string) error {
	name := profileName(profile)

	for _, m := range r.profiles[name] {
		for _, p := range []Property{a, b} {
			if m.Contains(p) {
				return &DuplicateMappingError{
					Profile:  name,
					Property: p,
					Existing: m,
				}
			}
		}
	}

	if r.profiles == nil {
		r.profiles = map[string][]Mapping{}
	}
	r.profiles[name] = append(r.profiles[name], Mapping{A: a, B: b})

	return nil
}

// RemoveMappingsFor deletes every mapping in the profile that contains
// p. It is a no-op when the profile is absent or p is unmapped.
func (r *Registry) RemoveMappingsFor(p Property, profile ...string) {
	name := profileName(profile)

	mappings, ok := r.profiles[name]
	if !ok {
		return
	}

	kept := mappings[:0]
	for _, m := range mappings {
		if !m.Contains(p) {
			kept = append(kept, m)
		}
	}
	r.profiles[name] = kept
}

// Counterpart returns the property mapped against p in the profile.
// The lookup is symmetric: it finds p on either side of a mapping.
// The second return is false when p is unmapped or the profile is
// absent.
func (r *Registry) Counterpart(p Property, profile ...string) (Property, bool) {
	for _, m := range r.profiles[profileName(profile)] {
		if other, ok := m.Counterpart(p); ok {
			return other, true
		}
	}

	return Property{}, false
}

// Contains reports whether some mapping in the profile contains p.
func (r *Registry) Contains(p Property, profile ...string) bool {
	_, ok := r.Counterpart(p, profile...)
	return ok
}

// RemoveProfile deletes the named profile and all of its mappings.
// It is a no-op when the profile is absent.
func (r *Registry) RemoveProfile(profile string) {
	delete(r.profiles, profile)
}

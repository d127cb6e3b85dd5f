package themegen

import (
	"fmt"
	"sort"
	"strings"
)

// Utility is one registered utility class: a selector and its declarations.
type Utility struct {
	Selector     string
	Declarations Declarations
	Source       string // plugin that registered it, for diagnostics
}

// Collision records a selector registered by more than one plugin. The later
// registration wins, per cascade rules.
type Collision struct {
	Selector string
	First    string // source of the shadowed registration
	Second   string // source of the winning registration
}

// Registry collects utility registrations from the plugin list in order.
// Registrations are last-write-wins per selector: a later plugin replaces
// the declarations and moves the rule to the end of the cascade.
type Registry struct {
	order      []string
	utilities  map[string]Utility
	collisions []Collision
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{utilities: make(map[string]Utility)}
}

// AddUtility registers a utility class. The selector is stored without its
// leading dot; declarations are copied so callers may reuse their maps.
func (r *Registry) AddUtility(selector string, decls Declarations, source string) {
	selector = strings.TrimPrefix(selector, ".")

	copied := make(Declarations, len(decls))
	for prop, val := range decls {
		copied[prop] = val
	}

	if prev, exists := r.utilities[selector]; exists {
		r.collisions = append(r.collisions, Collision{
			Selector: selector,
			First:    prev.Source,
			Second:   source,
		})
		// Move to the end of the cascade so the later plugin wins.
		for i, s := range r.order {
			if s == selector {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}

	r.order = append(r.order, selector)
	r.utilities[selector] = Utility{
		Selector:     selector,
		Declarations: copied,
		Source:       source,
	}
}

// Utilities returns the registered utilities in cascade order.
func (r *Registry) Utilities() []Utility {
	out := make([]Utility, 0, len(r.order))
	for _, selector := range r.order {
		out = append(out, r.utilities[selector])
	}
	return out
}

// Lookup returns the utility registered for a selector (without leading dot).
func (r *Registry) Lookup(selector string) (Utility, bool) {
	u, ok := r.utilities[strings.TrimPrefix(selector, ".")]
	return u, ok
}

// Collisions returns the selector collisions recorded during registration.
func (r *Registry) Collisions() []Collision {
	return r.collisions
}

// Len returns the number of registered utilities.
func (r *Registry) Len() int {
	return len(r.order)
}

// BuiltinPlugins lists the plugin names resolvable from a bare string entry.
// "themes" is the theming engine that turns the descriptor's theme list into
// per-theme custom-property blocks; it registers no utilities of its own.
var BuiltinPlugins = []string{"themes"}

// KnownBuiltin reports whether name is a built-in plugin.
func KnownBuiltin(name string) bool {
	for _, b := range BuiltinPlugins {
		if b == name {
			return true
		}
	}
	return false
}

// ApplyPlugins walks the plugin list in order and registers every utility
// into a fresh registry. Inline utility maps are registered in sorted
// selector order so repeated runs produce identical cascades.
func ApplyPlugins(specs []PluginSpec) (*Registry, error) {
	reg := NewRegistry()

	for i, spec := range specs {
		switch spec.Kind() {
		case "builtin":
			if !KnownBuiltin(spec.Name) {
				return nil, fmt.Errorf("plugins[%d]: unknown plugin %q", i, spec.Name)
			}
			// The themes plugin contributes at emission time, not here.

		case "utilities":
			source := fmt.Sprintf("plugins[%d]", i)
			selectors := make([]string, 0, len(spec.Utilities))
			for selector := range spec.Utilities {
				selectors = append(selectors, selector)
			}
			sort.Strings(selectors)
			for _, selector := range selectors {
				reg.AddUtility(selector, spec.Utilities[selector], source)
			}

		case "css":
			utilities, err := ParseCSSFile(spec.CSS)
			if err != nil {
				return nil, fmt.Errorf("plugins[%d]: %w", i, err)
			}
			for _, u := range utilities {
				reg.AddUtility(u.Selector, u.Declarations, spec.CSS)
			}
		}
	}

	return reg, nil
}

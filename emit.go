package themegen

import (
	"fmt"
	"sort"
	"strings"
)

const emitHeader = "/* Generated by themegen. DO NOT EDIT. */\n"

// Emit renders the resolved configuration as a stylesheet. Output is fully
// deterministic: color roles, token names and declarations are emitted in
// sorted order, utilities in cascade order. Emitting the same resolved
// input twice yields byte-identical output.
//
// When used is non-nil, utilities whose selector does not appear in the set
// are dropped (content pruning). Theme blocks are never pruned.
func Emit(themes []ResolvedTheme, extend map[string]string, reg *Registry, used map[string]bool) string {
	var b strings.Builder
	b.WriteString(emitHeader)

	for i, theme := range themes {
		b.WriteString("\n")
		if i == 0 {
			// First theme doubles as the document default.
			fmt.Fprintf(&b, ":root, [data-theme=%q] {\n", theme.Name)
		} else {
			fmt.Fprintf(&b, "[data-theme=%q] {\n", theme.Name)
		}
		writeCustomProperties(&b, "color-", theme.Colors)
		b.WriteString("}\n")
	}

	if len(extend) > 0 {
		b.WriteString("\n:root {\n")
		writeCustomProperties(&b, "", extend)
		b.WriteString("}\n")
	}

	for _, u := range reg.Utilities() {
		if used != nil && !used[u.Selector] {
			continue
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, ".%s {\n", u.Selector)
		writeDeclarations(&b, u.Declarations)
		b.WriteString("}\n")
	}

	return b.String()
}

// writeCustomProperties writes a sorted block of --prefix-name: value lines.
func writeCustomProperties(b *strings.Builder, prefix string, values map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(b, "  --%s%s: %s;\n", prefix, name, values[name])
	}
}

// writeDeclarations writes a sorted block of property: value lines.
func writeDeclarations(b *strings.Builder, decls Declarations) {
	props := make([]string, 0, len(decls))
	for prop := range decls {
		props = append(props, prop)
	}
	sort.Strings(props)

	for _, prop := range props {
		fmt.Fprintf(b, "  %s: %s;\n", prop, decls[prop])
	}
}

package schema

import (
	"fmt"
	"sort"
	"strings"
)

// WriteCND renders the schema back to CND text: namespace declarations first,
// then each node type with one definition per line. Parsing the output yields
// a schema structurally equal to the receiver.
func (s *Schema) WriteCND() string {
	var b strings.Builder

	prefixes := make([]string, 0, len(s.Namespaces))
	for prefix := range s.Namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		fmt.Fprintf(&b, "<%s = %s>\n", writeName(prefix), quoteString(s.Namespaces[prefix]))
	}

	for i, nt := range s.NodeTypes {
		if i > 0 || len(prefixes) > 0 {
			b.WriteString("\n")
		}
		writeNodeType(&b, nt)
	}

	return b.String()
}

func writeNodeType(b *strings.Builder, nt *NodeType) {
	fmt.Fprintf(b, "[%s]", writeName(nt.Name))

	if len(nt.Supertypes) > 0 {
		names := make([]string, len(nt.Supertypes))
		for i, s := range nt.Supertypes {
			names[i] = writeName(s)
		}
		fmt.Fprintf(b, " > %s", strings.Join(names, ", "))
	}

	if nt.Abstract {
		b.WriteString(" abstract")
	}
	if nt.Mixin {
		b.WriteString(" mixin")
	}
	if nt.Orderable {
		b.WriteString(" orderable")
	}
	if !nt.Queryable {
		b.WriteString(" noquery")
	}
	if nt.PrimaryItemName != "" {
		fmt.Fprintf(b, " primaryitem %s", writeName(nt.PrimaryItemName))
	}
	b.WriteString("\n")

	for _, prop := range nt.Properties {
		writePropertyDefinition(b, prop)
	}
	for _, child := range nt.ChildNodes {
		writeChildNodeDefinition(b, child)
	}
}

func writePropertyDefinition(b *strings.Builder, prop *PropertyDefinition) {
	fmt.Fprintf(b, "  - %s (%s)", writeName(prop.Name), prop.RequiredType)

	if len(prop.DefaultValues) > 0 {
		values := make([]string, len(prop.DefaultValues))
		for i, v := range prop.DefaultValues {
			values[i] = quoteString(v)
		}
		fmt.Fprintf(b, " = %s", strings.Join(values, ", "))
	}

	if prop.Autocreated {
		b.WriteString(" autocreated")
	}
	if prop.Mandatory {
		b.WriteString(" mandatory")
	}
	if prop.Protected {
		b.WriteString(" protected")
	}
	if prop.Multiple {
		b.WriteString(" multiple")
	}
	if prop.OnParentVersion != OnParentVersionCopy {
		fmt.Fprintf(b, " %s", prop.OnParentVersion)
	}
	if !prop.FullTextSearchable {
		b.WriteString(" nofulltext")
	}
	if !prop.QueryOrderable {
		b.WriteString(" noqueryorder")
	}

	if len(prop.ValueConstraints) > 0 {
		constraints := make([]string, len(prop.ValueConstraints))
		for i, c := range prop.ValueConstraints {
			constraints[i] = quoteString(c)
		}
		fmt.Fprintf(b, " < %s", strings.Join(constraints, ", "))
	}
	b.WriteString("\n")
}

func writeChildNodeDefinition(b *strings.Builder, child *ChildNodeDefinition) {
	fmt.Fprintf(b, "  + %s", writeName(child.Name))

	if len(child.RequiredTypes) > 0 {
		names := make([]string, len(child.RequiredTypes))
		for i, t := range child.RequiredTypes {
			names[i] = writeName(t)
		}
		fmt.Fprintf(b, " (%s)", strings.Join(names, ", "))
	}
	if child.DefaultType != "" {
		fmt.Fprintf(b, " = %s", writeName(child.DefaultType))
	}

	if child.Autocreated {
		b.WriteString(" autocreated")
	}
	if child.Mandatory {
		b.WriteString(" mandatory")
	}
	if child.Protected {
		b.WriteString(" protected")
	}
	if child.SameNameSiblings {
		b.WriteString(" sns")
	}
	if child.OnParentVersion != OnParentVersionCopy {
		fmt.Fprintf(b, " %s", child.OnParentVersion)
	}
	b.WriteString("\n")
}

// writeName emits a name bare when it is a valid CND identifier, quoted
// otherwise. The residual name "*" is always emitted bare.
func writeName(name string) string {
	if name == "*" {
		return name
	}
	if name == "" || !isBareName(name) {
		return quoteString(name)
	}
	return name
}

func isBareName(name string) bool {
	for _, c := range name {
		if !isNameRune(c) {
			return false
		}
	}
	return true
}

func isNameRune(c rune) bool {
	return c == ':' || c == '_' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

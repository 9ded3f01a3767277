package naming

import (
	"strings"
	"unicode/utf8"
)

// PropertyNameGenerator maps a raw schema property name to the identifier
// emitted in generated source. Code generators call it once per property.
type PropertyNameGenerator interface {
	Generate(rawName string) string
}

const (
	firstPassChars  = "\"'@?!$[]().=+|"
	secondPassChars = "*:-#&"
)

// substitution is a single table slot; set distinguishes "remove" from
// "leave alone".
type substitution struct {
	set  bool
	with string
}

// substitutionTable is indexed by ASCII byte. Every trigger character is
// ASCII, so scanning bytes never splits a multi-byte rune.
type substitutionTable [utf8.RuneSelf]substitution

func newSubstitutionTable(pairs ...string) *substitutionTable {
	var t substitutionTable
	for i := 0; i+1 < len(pairs); i += 2 {
		t[pairs[i][0]] = substitution{set: true, with: pairs[i+1]}
	}
	return &t
}

var firstPass = newSubstitutionTable(
	`"`, "",
	"'", "",
	"@", "",
	"?", "",
	"!", "",
	"$", "",
	"[", "",
	"]", "",
	"(", "_",
	")", "",
	".", "_",
	"=", "_",
	"+", "plus",
	"|", "_",
)

var secondPass = newSubstitutionTable(
	"*", "Star",
	":", "_",
	"-", "_",
	"#", "_",
	"&", "And",
)

// apply rewrites name in one linear scan. Replacement strings never contain
// a trigger of the same table, so the result does not depend on scan order.
func (t *substitutionTable) apply(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < utf8.RuneSelf && t[c].set {
			b.WriteString(t[c].with)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// OriginalPropertyNameGenerator generates property names without modifying
// their casing; it only removes or substitutes characters that are invalid
// in identifiers.
type OriginalPropertyNameGenerator struct{}

// Ensure OriginalPropertyNameGenerator implements PropertyNameGenerator at compile time.
var _ PropertyNameGenerator = OriginalPropertyNameGenerator{}

// Generate returns rawName with the substitution table applied.
// It never fails; the result is empty when every character was removed.
func (OriginalPropertyNameGenerator) Generate(rawName string) string {
	name := rawName

	if strings.ContainsAny(rawName, firstPassChars) {
		name = firstPass.apply(name)
	}

	// The second pass is gated on the raw name, not on the first pass output.
	// The two tables are disjoint, so the outcome is the same either way.
	if strings.ContainsAny(rawName, secondPassChars) {
		name = secondPass.apply(name)
	}

	return name
}

// GeneratePropertyName is shorthand for OriginalPropertyNameGenerator{}.Generate.
func GeneratePropertyName(rawName string) string {
	return OriginalPropertyNameGenerator{}.Generate(rawName)
}

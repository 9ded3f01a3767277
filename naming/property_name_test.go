package naming

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePropertyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Untouched
		{name: "empty string", input: "", want: ""},
		{name: "plain identifier", input: "userName", want: "userName"},
		{name: "casing preserved", input: "HTTPStatus", want: "HTTPStatus"},
		{name: "underscore kept", input: "snake_case", want: "snake_case"},
		{name: "digits kept", input: "v2", want: "v2"},
		{name: "unicode kept", input: "größe", want: "größe"},
		{name: "space kept", input: "first name", want: "first name"},
		{name: "slash kept", input: "a/b", want: "a/b"},

		// First pass removals
		{name: "double quote", input: `say"hi"`, want: "sayhi"},
		{name: "single quote", input: "it's", want: "its"},
		{name: "at sign", input: "@type", want: "type"},
		{name: "question mark", input: "isValid?", want: "isValid"},
		{name: "exclamation", input: "!important", want: "important"},
		{name: "dollar", input: "$ref", want: "ref"},
		{name: "brackets", input: "items[]", want: "items"},
		{name: "bracketed index", input: "filter[name]", want: "filtername"},
		{name: "close paren", input: "a)", want: "a"},

		// First pass substitutions
		{name: "dot", input: "foo.bar", want: "foo_bar"},
		{name: "open paren", input: "size(cm)", want: "size_cm"},
		{name: "equals", input: "a=b", want: "a_b"},
		{name: "plus", input: "a+b", want: "aplusb"},
		{name: "pipe", input: "a|b", want: "a_b"},
		{name: "odata annotation", input: "@odata.type", want: "odata_type"},

		// Second pass substitutions
		{name: "hyphen", input: "x-y", want: "x_y"},
		{name: "star", input: "*flag", want: "Starflag"},
		{name: "colon", input: "ns:name", want: "ns_name"},
		{name: "hash", input: "#id", want: "_id"},
		{name: "ampersand", input: "a&b", want: "aAndb"},
		{name: "header style", input: "X-Rate-Limit", want: "X_Rate_Limit"},

		// Both passes
		{name: "mixed passes", input: "@meta.x-count", want: "meta_x_count"},
		{name: "every trigger", input: `"'@?!$[]().=+|*:-#&`, want: "___plus_Star___And"},
		{name: "all removed", input: `"'@?!$[])`, want: ""},
		{name: "repeated chars", input: "a..b--c", want: "a__b__c"},
		{name: "plus and star", input: "c++*", want: "cplusplusStar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePropertyName(tt.input)
			assert.Equal(t, tt.want, got, "GeneratePropertyName(%q)", tt.input)
		})
	}
}

func TestOriginalPropertyNameGenerator_Interface(t *testing.T) {
	var g PropertyNameGenerator = OriginalPropertyNameGenerator{}
	assert.Equal(t, "foo_bar", g.Generate("foo.bar"))
	assert.Equal(t, GeneratePropertyName("a&b"), g.Generate("a&b"))
}

// TestGeneratePropertyName_OutputHasNoTriggers checks that substitutions never
// introduce a character either pass would rewrite.
func TestGeneratePropertyName_OutputHasNoTriggers(t *testing.T) {
	for c := 0; c < 128; c++ {
		in := "a" + string(rune(c)) + "b"
		out := GeneratePropertyName(in)
		assert.False(t, strings.ContainsAny(out, firstPassChars+secondPassChars),
			"output %q of %q still has a trigger character", out, in)
	}
}

// TestSubstitutionTables_Disjoint guards the assumption that lets the second
// pass be gated on the raw name.
func TestSubstitutionTables_Disjoint(t *testing.T) {
	for _, c := range firstPassChars {
		assert.False(t, secondPass[c].set, "%q is in both tables", c)
	}
	for i := range firstPass {
		if firstPass[i].set {
			assert.False(t, strings.ContainsAny(firstPass[i].with, secondPassChars),
				"first pass replacement for %q contains a second pass trigger", rune(i))
		}
	}
}

func TestGeneratePropertyName_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, "x_y_z", GeneratePropertyName("x-y.z"))
			}
		}()
	}
	wg.Wait()
}

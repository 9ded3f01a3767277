package naming

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// nameChars mixes identifier characters with every trigger of both passes.
var nameChars = []any{
	'a', 'Z', '0', '_', ' ', 'é',
	'"', '\'', '@', '?', '!', '$', '[', ']', '(', ')', '.', '=', '+', '|',
	'*', ':', '-', '#', '&',
}

func genRawName() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(nameChars...)).Map(func(runes []rune) string {
		return string(runes)
	})
}

func TestGeneratePropertyNameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("names without triggers are unchanged", prop.ForAll(
		func(name string) bool {
			return GeneratePropertyName(name) == name
		},
		gen.Identifier(),
	))

	properties.Property("generation is idempotent", prop.ForAll(
		func(name string) bool {
			once := GeneratePropertyName(name)
			return GeneratePropertyName(once) == once
		},
		genRawName(),
	))

	properties.Property("output never contains a trigger character", prop.ForAll(
		func(name string) bool {
			return !strings.ContainsAny(GeneratePropertyName(name), firstPassChars+secondPassChars)
		},
		genRawName(),
	))

	properties.Property("two-pass gating matches a single combined scan", prop.ForAll(
		func(name string) bool {
			return GeneratePropertyName(name) == secondPass.apply(firstPass.apply(name))
		},
		genRawName(),
	))

	properties.TestingRun(t)
}

//go:build property

package request

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFormatTargetDirProperties validates the directory normalization rules
// over arbitrary inputs.
func TestFormatTargetDirProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("normalization is idempotent", prop.ForAll(
		func(dir string) bool {
			once := FormatTargetDir(dir)
			return FormatTargetDir(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("result never ends in a path separator", prop.ForAll(
		func(dir string) bool {
			got := FormatTargetDir(dir)
			return !strings.HasSuffix(got, "/") && !strings.HasSuffix(got, "\\")
		},
		gen.AnyString(),
	))

	properties.Property("result has no surrounding whitespace", prop.ForAll(
		func(dir string) bool {
			got := FormatTargetDir(dir)
			return got == strings.TrimSpace(got)
		},
		gen.AnyString(),
	))

	properties.Property("appending separators does not change the result", prop.ForAll(
		func(dir string, n uint8) bool {
			padded := dir + strings.Repeat("/", int(n%8))
			return FormatTargetDir(padded) == FormatTargetDir(dir)
		},
		gen.AlphaString(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

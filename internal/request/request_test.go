package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_HelpFlag(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
	}{
		{"long form alone", []string{"--help"}},
		{"short form alone", []string{"-h"}},
		{"after positional", []string{"my-app", "--help"}},
		{"between flags", []string{"-t", "vue", "-h", "my-app"}},
		{"trailing short form", []string{"my-app", "--template", "react", "-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Normalize(tt.raw)
			assert.True(t, parsed.Help, "help flag should be detected in %v", tt.raw)
		})
	}
}

func TestNormalize_Template(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want string
	}{
		{"long separate", []string{"--template", "vue-ts"}, "vue-ts"},
		{"long equals", []string{"--template=vue-ts"}, "vue-ts"},
		{"short separate", []string{"-t", "react-swc-ts"}, "react-swc-ts"},
		{"short equals", []string{"-t=react"}, "react"},
		{"absent", []string{"my-app"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Normalize(tt.raw)
			assert.Equal(t, tt.want, parsed.Template)
		})
	}
}

func TestNormalize_TargetDir(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want string
	}{
		{"plain", []string{"my-app"}, "my-app"},
		{"trailing slashes stripped", []string{"my-app///"}, "my-app"},
		{"whitespace only treated as absent", []string{"   "}, ""},
		{"first positional wins", []string{"one", "two"}, "one"},
		{"flag value not positional", []string{"-t", "vue", "my-app"}, "my-app"},
		{"none", []string{"--template", "vue"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Normalize(tt.raw)
			assert.Equal(t, tt.want, parsed.TargetDir)
		})
	}
}

func TestNormalize_UnknownFlagsIgnored(t *testing.T) {
	parsed := Normalize([]string{"--force", "my-app", "--color=never", "-x"})

	assert.False(t, parsed.Help)
	assert.Empty(t, parsed.Template)
	assert.Equal(t, "my-app", parsed.TargetDir)
}

func TestNormalize_EndToEndArgs(t *testing.T) {
	parsed := Normalize([]string{"my-app", "--template", "vue-ts"})

	assert.Equal(t, ParsedArgs{TargetDir: "my-app", Template: "vue-ts"}, parsed)
}

func TestFormatTargetDir(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "my-app", "my-app"},
		{"trailing slashes", "aaa///", "aaa"},
		{"single trailing slash", "aaa/", "aaa"},
		{"backslashes", "aaa\\\\", "aaa"},
		{"surrounding whitespace", "  my-app  ", "my-app"},
		{"whitespace then slash", " my-app/ ", "my-app"},
		{"whitespace only", "  ", ""},
		{"empty", "", ""},
		{"nested path keeps interior separators", "apps/web/", "apps/web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTargetDir(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatTargetDir(got), "FormatTargetDir must be idempotent")
		})
	}
}

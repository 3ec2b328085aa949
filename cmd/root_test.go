package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/appforge/internal/prompt"
)

// execute runs the root command with the given arguments and captures its
// output streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

// withTemplateRoot points the scaffolder at a temp template root for the
// duration of one test.
func withTemplateRoot(t *testing.T, root string) {
	t.Helper()

	settings.Set("template-root", root)
	t.Cleanup(func() { settings = viper.New() })
}

// writeTemplateDir creates a minimal template tree under root.
func writeTemplateDir(t *testing.T, root, id string, files map[string]string) {
	t.Helper()

	dir := filepath.Join(root, "template-"+id)
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRoot_Help(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage: appforge")
	assert.Contains(t, out, "--template")
	assert.Contains(t, out, "vue-ts")
	assert.Contains(t, out, "react-swc-ts")

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "help must not create anything")
}

func TestRoot_HelpShortFormAnywhere(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := execute(t, "my-app", "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: appforge")
}

func TestRoot_EndToEnd(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	templateRoot := t.TempDir()
	writeTemplateDir(t, templateRoot, "vue-ts", map[string]string{
		"package.json": `{"name": "template-vue-ts", "version": "0.0.0"}`,
		"index.html":   "<html></html>",
		"_gitignore":   "node_modules\n",
		"src/main.ts":  "export {}",
	})
	withTemplateRoot(t, templateRoot)

	out, _, err := execute(t, "my-app", "--template", "vue-ts")
	require.NoError(t, err)

	assert.Contains(t, out, "Scaffolding project in")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "npm install")
	assert.Contains(t, out, "npm run dev")

	dest := filepath.Join(workDir, "my-app")
	assert.FileExists(t, filepath.Join(dest, "index.html"))
	assert.FileExists(t, filepath.Join(dest, "src", "main.ts"))
	assert.FileExists(t, filepath.Join(dest, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(dest, "_gitignore"))

	data, err := os.ReadFile(filepath.Join(dest, "package.json"))
	require.NoError(t, err)
	var pkg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &pkg))
	assert.Equal(t, "my-app", pkg["name"])
}

func TestRoot_UnknownFlagsIgnored(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	templateRoot := t.TempDir()
	writeTemplateDir(t, templateRoot, "react", map[string]string{"index.html": "x"})
	withTemplateRoot(t, templateRoot)

	_, _, err := execute(t, "--verbose", "my-app", "-t", "react")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(workDir, "my-app", "index.html"))
}

func TestRoot_MissingTemplateFails(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)
	withTemplateRoot(t, t.TempDir())

	_, errOut, err := execute(t, "my-app", "--template", "vue-ts")

	require.Error(t, err)
	assert.Contains(t, errOut, "locate template")
	assert.NoDirExists(t, filepath.Join(workDir, "my-app"))
}

// cancellingRunner aborts at the first picker, as if the user hit ctrl+c.
type cancellingRunner struct{}

func (cancellingRunner) Input(title, fallback string) (string, error) {
	return fallback, nil
}

func (cancellingRunner) Select(string, []prompt.Choice) (string, error) {
	return "", prompt.ErrCancelled
}

func TestRoot_CancellationDuringFramework(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)
	withTemplateRoot(t, t.TempDir())

	orig := newRunner
	newRunner = func() prompt.Runner { return cancellingRunner{} }
	t.Cleanup(func() { newRunner = orig })

	out, _, err := execute(t, "my-app")
	require.NoError(t, err, "cancellation is not an error exit")

	assert.Contains(t, out, "Cancelled")

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "cancellation must not create directories")
}

func TestRoot_VersionSubcommand(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enMessages = `greeting: Hello {name}
welcome:
  male: Welcome sir
  female: Welcome madam
apples:
  one: "{} apple"
  other: "{} apples"
page: Page {} of {}
app:
  title: msgtree
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func messagesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en.yaml"), enMessages)
	writeFile(t, filepath.Join(dir, "de.json"), `{"apples": {"one": "{} Apfel", "other": "{} Äpfel"}}`)
	return dir
}

func TestTranslateCmd(t *testing.T) {
	file := filepath.Join(messagesDir(t), "en.yaml")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named", []string{"translate", "greeting", "--named", "name=Ada"}, "Hello Ada\n"},
		{"positional", []string{"translate", "page", "--arg", "1", "--arg", "3"}, "Page 1 of 3\n"},
		{"gender", []string{"translate", "welcome", "--gender", "female"}, "Welcome madam\n"},
		{"namespace", []string{"translate", "title", "--namespace", "app"}, "msgtree\n"},
		{"missing", []string{"translate", "nope"}, "nope\n"},
		{"not found", []string{"translate", "nope", "--not-found", "Missing {}", "--arg", "x"}, "Missing x\n"},
		{"override key", []string{"translate", "fallback", "--key", "app.title"}, "msgtree\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--messages", file, "--quiet"}, tt.args...)
			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestTranslateCmd_invalidGender(t *testing.T) {
	file := filepath.Join(messagesDir(t), "en.yaml")
	_, _, err := execute(t, "--messages", file, "translate", "welcome", "--gender", "robot")
	assert.Error(t, err)
}

func TestTranslateCmd_logsDiagnostics(t *testing.T) {
	file := filepath.Join(messagesDir(t), "en.yaml")
	stdout, stderr, err := execute(t, "--messages", file, "translate", "nope")
	require.NoError(t, err)
	assert.Equal(t, "nope\n", stdout)
	assert.Contains(t, stderr, "localization key nope not found")

	_, stderr, err = execute(t, "--messages", file, "--quiet", "translate", "nope")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestPluralCmd(t *testing.T) {
	dir := messagesDir(t)

	stdout, _, err := execute(t, "--messages", filepath.Join(dir, "en.yaml"), "plural", "apples", "5")
	require.NoError(t, err)
	assert.Equal(t, "5 apples\n", stdout)

	stdout, _, err = execute(t, "--messages", dir, "--locale", "de", "plural", "apples", "1234.5", "--localized")
	require.NoError(t, err)
	assert.Equal(t, "1.234,5 Äpfel\n", stdout)

	stdout, _, err = execute(t, "--messages", dir, "--locale", "de", "plural", "apples", "1", "--category")
	require.NoError(t, err)
	assert.Equal(t, "one\n", stdout)

	_, _, err = execute(t, "--messages", dir, "--locale", "de", "plural", "apples", "many")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	dir := messagesDir(t)
	stdout, _, err := execute(t, "--messages", dir, "--locale", "de", "list")
	require.NoError(t, err)
	assert.Equal(t, "apples.one = {} Apfel\napples.other = {} Äpfel\n", stdout)
}

func TestMessagesDirectoryNeedsKnownLocale(t *testing.T) {
	dir := messagesDir(t)

	_, _, err := execute(t, "--messages", dir, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: de, en")

	_, _, err = execute(t, "--messages", dir, "--locale", "fr", "list")
	assert.Error(t, err)

	_, _, err = execute(t, "list")
	assert.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := messagesDir(t)
	configPath := filepath.Join(t.TempDir(), "msgtree.toml")
	writeFile(t, configPath, "messages = \""+filepath.ToSlash(dir)+"\"\nlocale = \"de\"\nquiet = true\n")

	stdout, _, err := execute(t, "--config", configPath, "plural", "apples", "3")
	require.NoError(t, err)
	assert.Equal(t, "3 Äpfel\n", stdout)

	t.Setenv("MSGTREE_LOCALE", "en")
	stdout, _, err = execute(t, "--config", configPath, "plural", "apples", "3")
	require.NoError(t, err)
	assert.Equal(t, "3 apples\n", stdout)

	_, _, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "list")
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	dir := messagesDir(t)
	logPath := filepath.Join(dir, "logs", "msgtree.log")

	_, stderr, err := execute(t, "--messages", filepath.Join(dir, "en.yaml"), "--quiet", "--log-file", logPath, "translate", "nope")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"key_missing"`)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "msgtree v"+Version)
}

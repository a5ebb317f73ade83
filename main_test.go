package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlassert/matcher"
)

const googleSpec = `
kind: html
children:
  - kind: heading
    content: Hello
  - kind: text
    content: Content
  - kind: a
    content: Google
    attrs: {href: www.google.com}
`

const googlePage = `<html><div><h1>Hello</h1><span>noise</span></div><p>Content</p><a href="www.google.com">Google</a></html>`

const bingPage = `<html><div><h1>Hello</h1></div><p>Content</p><a href="www.bing.com">Google</a></html>`

// isolate keeps the user's own config file out of the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(envConfig, filepath.Join(dir, "missing.yaml"))
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(stdin string, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	dir := isolate(t)
	spec := writeFile(t, dir, "spec.yaml", googleSpec)

	t.Run("pass", func(t *testing.T) {
		out, err := run("", "match", "--spec", spec, writeFile(t, dir, "google.html", googlePage))
		require.NoError(t, err)
		assert.Equal(t, 0, exitCode(err))
		assert.Contains(t, out, "PASSED: matched 4/4")
	})

	t.Run("pass from stdin", func(t *testing.T) {
		out, err := run(googlePage, "match", "-s", spec)
		require.NoError(t, err)
		assert.Contains(t, out, "PASSED")
	})

	t.Run("no match", func(t *testing.T) {
		out, err := run(bingPage, "match", "--spec", spec, "-")
		require.Error(t, err)
		assert.Equal(t, errNoMatch, errors.Cause(err))
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, out, "FAILED: matched 3/4")
		assert.Contains(t, out, "not found anywhere:")
		assert.Contains(t, out, "(at html > a)")
	})

	t.Run("no prune gives the same answer", func(t *testing.T) {
		_, err := run(bingPage, "match", "--no-prune", "--spec", spec)
		assert.Equal(t, 1, exitCode(err))
	})

	t.Run("missing spec flag", func(t *testing.T) {
		_, err := run(googlePage, "match")
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("spec and document both on stdin", func(t *testing.T) {
		_, err := run(googlePage, "match", "--spec", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stdin")
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("bad spec", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.yaml", "name: \"a(\"\n")
		_, err := run(googlePage, "match", "--spec", bad)
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
		assert.Contains(t, err.Error(), "load spec")
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, err := run("<a><b></a>", "match", "--mode", "xml", "--spec", spec)
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
		var parseErr *matcher.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := run(googlePage, "match", "--mode", "sgml", "--spec", spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown parse mode")
	})
}

func TestPruneCommand(t *testing.T) {
	dir := isolate(t)
	spec := writeFile(t, dir, "spec.yaml", googleSpec)

	out, err := run(googlePage, "prune", "--spec", spec)
	require.NoError(t, err)
	assert.NotContains(t, out, "<span>")
	assert.Contains(t, out, "noise", "text of pruned elements is kept")
	assert.Contains(t, out, "<h1>")

	out, err = run(googlePage, "prune", "--diff", "--spec", spec)
	require.NoError(t, err)
	assert.Contains(t, out, "- ")
	assert.Contains(t, out, "<span>")
	assert.Contains(t, out, "  <html>\n")
}

func TestPrettyCommand(t *testing.T) {
	isolate(t)

	out, err := run("<p>hi</p>", "pretty")
	require.NoError(t, err)
	assert.Equal(t, "<html>\n <head>\n </head>\n <body>\n  <p>\n   hi\n  </p>\n </body>\n</html>\n", out)

	out, err = run("<p>hi</p>", "pretty", "--dump")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#document\n"))
}

func TestSpecCommand(t *testing.T) {
	dir := isolate(t)
	spec := writeFile(t, dir, "spec.yaml", googleSpec)

	out, err := run("", "spec", spec)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<html>\n"))

	out, err = run("", "spec", "--flat", spec)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1. ElementDefinition[name=html,content=,attrs={}] (at html)", lines[0])
	assert.Equal(t, "4. ElementDefinition[name=a,content=Google,attrs={href=www.google.com}] (at html > a)", lines[3])

	_, err = run("", "spec", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	spec := writeFile(t, dir, "spec.yaml", googleSpec)

	cfg := writeFile(t, dir, "config.yaml", "log_level: debug\nlog_format: json\n")
	out, err := run(googlePage, "--config", cfg, "match", "--spec", spec)
	require.NoError(t, err)
	assert.Contains(t, out, `"msg":"definition matched"`)
	assert.Contains(t, out, `"component":"matcher"`)

	_, err = run(googlePage, "--config", filepath.Join(dir, "missing.yaml"), "match", "--spec", spec)
	assert.Error(t, err, "an explicit config file must exist")

	bad := writeFile(t, dir, "bad.yaml", "log_levle: debug\n")
	_, err = run(googlePage, "--config", bad, "match", "--spec", spec)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.True(t, cfg.pruning())

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), true)
	assert.Error(t, err)

	cfg, err = loadConfig(writeFile(t, dir, "empty.yaml", ""), true)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(writeFile(t, dir, "c.yaml", "mode: xml\nprune: false\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Mode)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.pruning())

	for _, src := range []string{"mode: sgml\n", "log_level: loud\n", "log_format: xml\n"} {
		_, err := loadConfig(writeFile(t, dir, "invalid.yaml", src), true)
		assert.Error(t, err, src)
	}
}

func TestResolveConfigPath(t *testing.T) {
	path, explicit, err := resolveConfigPath("given.yaml")
	require.NoError(t, err)
	assert.Equal(t, "given.yaml", path)
	assert.True(t, explicit)

	t.Setenv(envConfig, "/etc/htmlassert.yaml")
	path, explicit, err = resolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/htmlassert.yaml", path)
	assert.False(t, explicit)

	t.Setenv(envConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, _, err = resolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", appName, "config.yaml"), path)
}

func TestLineDiff(t *testing.T) {
	out := lineDiff("a\nb\nc\n", "a\nc\nd\n")
	assert.Equal(t, "  a\n- b\n  c\n+ d\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.Wrap(errNoMatch, "match")))
	assert.Equal(t, 2, exitCode(errors.New("boom")))
}

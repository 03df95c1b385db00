package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sectiongeninternal "github.com/sublee/sectiongen/internal/sectiongen"
)

func loadOptions(t *testing.T, config string, args ...string) (options, error) {
	t.Helper()

	dir := t.TempDir()
	if config != "" {
		path := filepath.Join(dir, sectiongeninternal.ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	}

	var opts options
	cmd := &cobra.Command{}
	opts.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	err := opts.load(cmd, dir)
	return opts, err
}

func TestOptionsDefault(t *testing.T) {
	opts, err := loadOptions(t, "")
	require.NoError(t, err)
	assert.Equal(t, sectiongeninternal.DefaultConfig(), opts.cfg)
	assert.False(t, opts.diff)
	assert.False(t, opts.check)
}

func TestOptionsFromConfig(t *testing.T) {
	opts, err := loadOptions(t, "output: sections_gen.go\ntags: [a]\ncolor: never\n")
	require.NoError(t, err)
	assert.Equal(t, "sections_gen.go", opts.cfg.Output)
	assert.Equal(t, []string{"a"}, opts.cfg.Tags)
	assert.Equal(t, "never", opts.cfg.Color)
}

func TestOptionsFlagsOverrideConfig(t *testing.T) {
	opts, err := loadOptions(t, "output: sections_gen.go\ntags: [a]\ntests: true\n",
		"-o", "x_gen.go", "-b", "b,c", "-d", "--check", "-v")
	require.NoError(t, err)
	assert.Equal(t, "x_gen.go", opts.cfg.Output)
	assert.Equal(t, []string{"b", "c"}, opts.cfg.Tags)
	assert.True(t, opts.cfg.Tests, "unchanged flags keep the config value")
	assert.True(t, opts.diff)
	assert.True(t, opts.check)
	assert.True(t, opts.verbose)
}

func TestOptionsInvalid(t *testing.T) {
	_, err := loadOptions(t, "", "-c", "rainbow")
	assert.ErrorContains(t, err, `invalid color "rainbow"`)

	_, err = loadOptions(t, "", "-o", "x_test.go")
	assert.ErrorContains(t, err, "must not be a test file")
}

func TestColorize(t *testing.T) {
	message := "main.go:7:2: record R: field a: bad\nno position"
	colored := colorize(message)

	assert.Contains(t, colored, dim.Sprint("main.go:7:2: "))
	assert.Contains(t, colored, red.Sprint("record R: field a: bad"))
	assert.Contains(t, colored, "\nno position")
	assert.NotEqual(t, message, colored)
}

func TestColorizeDiff(t *testing.T) {
	diff := "--- a/x.go\n+++ b/x.go\n@@\n same\n-old\n+new\n"
	colored := colorizeDiff(diff)

	assert.Equal(t, dim.Sprint("--- a/x.go")+"\n"+
		dim.Sprint("+++ b/x.go")+"\n"+
		cyan.Sprint("@@")+"\n"+
		" same\n"+
		red.Sprint("-old")+"\n"+
		green.Sprint("+new")+"\n", colored)
}

func TestColorsAreForced(t *testing.T) {
	// Colors do not depend on the terminal of the test.
	assert.Contains(t, red.Sprint("x"), "\x1b[")
}

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strext/xbufio"
	"strext/xstrings"
)

const panReport = "hello world!\n" +
	"The pan flag's colours are (in rgb):\n" +
	"pink: (255, 27, 141)\n" +
	"yellow: (255, 218, 0)\n" +
	"blue: (27, 179, 255)"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"strext"}, args...))
	return out.String(), err
}

func TestWriteFlagReport(t *testing.T) {
	var b xstrings.Builder
	writeFlagReport(&b, "pan", panColors, nil)
	assert.Equal(t, panReport, b.String())
}

func TestFlagCommand(t *testing.T) {
	out, err := run(t, "", "flag")
	require.NoError(t, err)
	assert.Equal(t, panReport+"\n", out)
}

func TestFlagCommandCustomColors(t *testing.T) {
	out, err := run(t, "", "flag", "--name", "trans",
		"--color", "blue=91,206,250",
		"--color", "pink=245, 169, 184",
		"--color", "white=255,255,255")
	require.NoError(t, err)
	assert.Equal(t, "hello world!\n"+
		"The trans flag's colours are (in rgb):\n"+
		"blue: (91, 206, 250)\n"+
		"pink: (245, 169, 184)\n"+
		"white: (255, 255, 255)\n", out)
}

func TestFlagCommandSwatch(t *testing.T) {
	out, err := run(t, "", "flag", "--swatch")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "pink: (255, 27, 141) "), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "yellow: (255, 218, 0) "), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "blue: (27, 179, 255) "), lines[4])
}

func TestFlagCommandBadColor(t *testing.T) {
	_, err := run(t, "", "flag", "--color", "pink=1,2")
	assert.EqualError(t, err, `colour "pink=1,2": want 3 channels, got 2`)
}

func TestFlagCommandColorValueStaysWhole(t *testing.T) {
	out, err := run(t, "", "flag", "--name", "one", "--color", "grey=128,128,128")
	require.NoError(t, err)
	assert.Equal(t, "hello world!\n"+
		"The one flag's colours are (in rgb):\n"+
		"grey: (128, 128, 128)\n", out)
}

func TestParseColor(t *testing.T) {
	col, err := parseColor("pink=255,27,141")
	require.NoError(t, err)
	assert.Equal(t, color{Name: "pink", R: 255, G: 27, B: 141}, col)
	assert.Equal(t, "#ff1b8d", col.hex())

	for _, bad := range []string{"pink", "=1,2,3", "pink=1,2", "pink=1,2,256", "pink=-1,2,3", "pink=a,b,c"} {
		_, err := parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestDebugCommand(t *testing.T) {
	out, err := run(t, "hello\n\"quoted\"\r\nlast", "debug")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`+"\n"+`"\"quoted\""`+"\n"+`"last"`+"\n", out)
}

func TestDebugCommandNumbered(t *testing.T) {
	out, err := run(t, "a\nb\n", "debug", "--number")
	require.NoError(t, err)
	assert.Equal(t, "(1, \"a\")\n(2, \"b\")\n", out)
}

func TestEchoDebugEmptyInput(t *testing.T) {
	var b xstrings.Builder
	n, err := echoDebug(&b, xbufio.NewReader(strings.NewReader("")), false)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, b.String())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigCommand(t *testing.T) {
	path := writeConfig(t, "swatch: true\nbuffer_size: 64\n")
	t.Setenv("STREXT_LOG_LEVEL", "warn")

	out, err := run(t, "", "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: warn\n")
	assert.Contains(t, out, "log_json: false\n")
	assert.Contains(t, out, "swatch: true\n")
	assert.Contains(t, out, "buffer_size: 64\n")
	assert.Contains(t, out, "config_file: "+path)
}

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read the configuration file")

	_, err = LoadConfig(writeConfig(t, "buffer_size: 0\n"))
	assert.ErrorContains(t, err, "buffer_size must be positive")
}

func TestConfigFileEnablesSwatch(t *testing.T) {
	path := writeConfig(t, "swatch: true\n")

	out, err := run(t, "", "-c", path, "flag")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.Split(out, "\n")[2], "pink: (255, 27, 141) "))

	out, err = run(t, "", "-c", path, "flag", "--swatch=false")
	require.NoError(t, err)
	assert.Equal(t, panReport+"\n", out)
}

type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestCommandOutputFailureIsReturned(t *testing.T) {
	path := writeConfig(t, "buffer_size: 16\n")

	for _, cmd := range []string{"flag", "config", "debug"} {
		t.Run(cmd, func(t *testing.T) {
			app := newApp(strings.NewReader(strings.Repeat("line\n", 10)), closedPipe{})
			err := app.Run([]string{"strext", "-c", path, cmd})
			require.Error(t, err)
			assert.ErrorIs(t, err, io.ErrClosedPipe)

			var failure *xstrings.WriteFailure
			assert.ErrorAs(t, err, &failure)
			assert.Contains(t, err.Error(), "failed to write output")
		})
	}
}

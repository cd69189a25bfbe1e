package cli

// TEST TYPE: Integration Tests
// PURPOSE: Drive the commands end to end against a real content tree
// and verify table files and command output.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/redirmap/pkg/errors"
)

func captureOutput(f func()) (string, error) {
	// Create a pipe to capture stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	// Save the original stdout
	oldStdout := os.Stdout
	os.Stdout = w

	// Create a channel to capture the output
	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		outputChan <- buf.String()
	}()

	// Execute the function
	f()

	// Restore stdout and close the writer
	os.Stdout = oldStdout
	_ = w.Close()

	// Get the captured output
	output := <-outputChan
	return output, nil
}

// runRedirmap executes the CLI with the given arguments and returns its
// stdout and the execution error.
func runRedirmap(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var execErr error
	output, err := captureOutput(func() {
		rootCmd := NewRootCmd()
		// A nil slice would make cobra fall back to os.Args
		rootCmd.SetArgs(append([]string{}, args...))
		execErr = rootCmd.Execute()
	})
	require.NoError(t, err)
	return output, execErr
}

// clearEnv guarantees no ambient configuration leaks into a test.
// t.Setenv alone would leave the variables set to "".
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONTENT_ROOT",
		"REDIRMAP_CONTENT_ROOT",
		"REDIRMAP_LOCALES",
		"REDIRMAP_OUTPUT__COLOR",
		"REDIRMAP_CACHE__LOCATE_SIZE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeDoc(t *testing.T, root, localeDir, folder, slug string) {
	t.Helper()
	dir := filepath.Join(root, localeDir, folder)
	require.NoError(t, os.MkdirAll(dir, 0755))

	content := "---\ntitle: " + filepath.Base(folder) + "\nslug: " + slug + "\n---\n\nContent.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(content), 0644))
}

func writeTableFile(t *testing.T, root, localeDir, content string) string {
	t.Helper()
	dir := filepath.Join(root, localeDir)
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, "_redirects.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// seedContent builds a small corpus with documents in two locales.
func seedContent(t *testing.T) string {
	t.Helper()
	clearEnv(t)

	root := t.TempDir()
	writeDoc(t, root, "en-us", "web/api/fetch", "Web/API/Fetch")
	writeDoc(t, root, "en-us", "web/http", "Web/HTTP")
	writeDoc(t, root, "fr", "web/api/fetch", "Web/API/Fetch")
	return root
}

func TestAddCommandWritesTable(t *testing.T) {
	root := seedContent(t)

	output, err := runRedirmap(t, "--root", root, "add",
		"/en-US/docs/Web/XHR", "/en-US/docs/Web/API/Fetch")
	require.NoError(t, err)
	assert.Contains(t, output, "OK")
	assert.Contains(t, output, "en-US")

	raw, readErr := os.ReadFile(filepath.Join(root, "en-us", "_redirects.txt"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# FROM-URL\tTO-URL\n/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n",
		string(raw))
}

func TestAddCommandRejectsDocumentSource(t *testing.T) {
	root := seedContent(t)

	// Web/HTTP exists as a document, so it cannot become a source
	_, err := runRedirmap(t, "--root", root, "add",
		"/en-US/docs/Web/HTTP", "/en-US/docs/Web/API/Fetch")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceIsDocument), "got %v", err)

	_, statErr := os.Stat(filepath.Join(root, "en-us", "_redirects.txt"))
	assert.True(t, os.IsNotExist(statErr), "no table should have been written")
}

func TestImportCommandSplitsLocales(t *testing.T) {
	root := seedContent(t)

	importFile := filepath.Join(t.TempDir(), "moves.txt")
	content := "# moved pages\n" +
		"/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n" +
		"/fr/docs/Web/XHR\t/fr/docs/Web/API/Fetch\n"
	require.NoError(t, os.WriteFile(importFile, []byte(content), 0644))

	output, err := runRedirmap(t, "--root", root, "import", importFile)
	require.NoError(t, err)
	assert.Contains(t, output, "en-US")
	assert.Contains(t, output, "fr")

	enRaw, readErr := os.ReadFile(filepath.Join(root, "en-us", "_redirects.txt"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# FROM-URL\tTO-URL\n/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n",
		string(enRaw))

	frRaw, readErr := os.ReadFile(filepath.Join(root, "fr", "_redirects.txt"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# FROM-URL\tTO-URL\n/fr/docs/Web/XHR\t/fr/docs/Web/API/Fetch\n",
		string(frRaw))
}

func TestImportCommandReadsTOML(t *testing.T) {
	root := seedContent(t)

	importFile := filepath.Join(t.TempDir(), "renames.toml")
	content := `[[redirect]]
from = "/en-US/docs/Web/XHR"
to = "/en-US/docs/Web/API/Fetch"

[[redirect]]
from = "/en-US/docs/Web/Old"
to = "/en-US/docs/Web/HTTP"
`
	require.NoError(t, os.WriteFile(importFile, []byte(content), 0644))

	_, err := runRedirmap(t, "--root", root, "import", importFile)
	require.NoError(t, err)

	raw, readErr := os.ReadFile(filepath.Join(root, "en-us", "_redirects.txt"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# FROM-URL\tTO-URL\n"+
			"/en-US/docs/Web/Old\t/en-US/docs/Web/HTTP\n"+
			"/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n",
		string(raw))
}

func TestResolveCommandPrintsTargets(t *testing.T) {
	root := seedContent(t)
	writeTableFile(t, root, "en-us",
		"# FROM-URL\tTO-URL\n/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n")

	// Output under a pipe is plain text: one resolved target per line,
	// misses echoing the input.
	output, err := runRedirmap(t, "--root", root, "resolve",
		"/en-US/docs/Web/XHR", "/en-US/docs/Web/Nope")
	require.NoError(t, err)
	assert.Equal(t, "/en-US/docs/Web/API/Fetch\n/en-US/docs/Web/Nope\n", output)
}

func TestValidateCommand(t *testing.T) {
	t.Run("canonical table passes", func(t *testing.T) {
		root := seedContent(t)
		writeTableFile(t, root, "en-us",
			"# FROM-URL\tTO-URL\n/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n")

		output, err := runRedirmap(t, "--root", root, "validate", "en-US")
		require.NoError(t, err)
		assert.Contains(t, output, "OK")
	})

	t.Run("unsorted table fails", func(t *testing.T) {
		root := seedContent(t)
		writeTableFile(t, root, "en-us",
			"# FROM-URL\tTO-URL\n"+
				"/en-US/docs/Web/Zeta\t/en-US/docs/Web/API/Fetch\n"+
				"/en-US/docs/Web/Alpha\t/en-US/docs/Web/API/Fetch\n")

		output, err := runRedirmap(t, "--root", root, "validate", "en-US")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		assert.Contains(t, output, "ERROR")
	})

	t.Run("unknown locale argument", func(t *testing.T) {
		root := seedContent(t)

		_, err := runRedirmap(t, "--root", root, "validate", "xx")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLocaleUnknown), "got %v", err)
	})
}

func TestValidateCommandSingleURL(t *testing.T) {
	root := seedContent(t)

	_, err := runRedirmap(t, "--root", root, "validate",
		"--from", "/en-US/docs/Web/Gone")
	assert.NoError(t, err)

	// Web/HTTP is a live document
	_, err = runRedirmap(t, "--root", root, "validate",
		"--from", "/en-US/docs/Web/HTTP")
	assert.Error(t, err)

	_, err = runRedirmap(t, "--root", root, "validate",
		"--to", "https://example.com/elsewhere")
	assert.NoError(t, err)

	_, err = runRedirmap(t, "--root", root, "validate",
		"--to", "http://example.com/insecure")
	assert.Error(t, err)
}

func TestFixCommandRepairsTable(t *testing.T) {
	root := seedContent(t)
	writeDoc(t, root, "en-us", "web/c", "Web/C")
	tablePath := writeTableFile(t, root, "en-us",
		"/en-US/docs/Web/B\t/en-US/docs/Web/C\n"+
			"/en-US/docs/Web/A\t/en-US/docs/Web/B\n"+
			"/en-US/docs/Web/HTTP\t/en-US/docs/Web/API/Fetch\n"+
			"/en-US/docs/Web/Enc%20oded\t/en-US/docs/Web/C\n")

	output, err := runRedirmap(t, "--root", root, "fix", "en-US")
	require.NoError(t, err)
	assert.Contains(t, output, "CHANGED")

	raw, readErr := os.ReadFile(tablePath)
	require.NoError(t, readErr)
	assert.Equal(t,
		"# FROM-URL\tTO-URL\n"+
			"/en-US/docs/Web/A\t/en-US/docs/Web/C\n"+
			"/en-US/docs/Web/B\t/en-US/docs/Web/C\n",
		string(raw))

	// Second run finds nothing to repair
	output, err = runRedirmap(t, "--root", root, "fix", "en-US")
	require.NoError(t, err)
	assert.Contains(t, output, "OK")
	assert.NotContains(t, output, "CHANGED")
}

// TestFixCommandDryRun tests that --dry-run reports changes without writing
func TestFixCommandDryRun(t *testing.T) {
	root := seedContent(t)
	writeDoc(t, root, "en-us", "web/c", "Web/C")
	messy := "/en-US/docs/Web/B\t/en-US/docs/Web/C\n" +
		"/en-US/docs/Web/A\t/en-US/docs/Web/B\n"
	tablePath := writeTableFile(t, root, "en-us", messy)

	output, err := runRedirmap(t, "--root", root, "fix", "--dry-run", "en-US")
	require.NoError(t, err)
	assert.Contains(t, output, "CHANGED")
	assert.Contains(t, output, "DRY RUN MODE - No changes were made")

	raw, readErr := os.ReadFile(tablePath)
	require.NoError(t, readErr)
	assert.Equal(t, messy, string(raw), "dry run must not rewrite the table")
}

func TestListCommandIsValidTableFormat(t *testing.T) {
	root := seedContent(t)
	writeTableFile(t, root, "en-us",
		"# FROM-URL\tTO-URL\n/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n")
	writeTableFile(t, root, "fr",
		"# FROM-URL\tTO-URL\n/fr/docs/Web/XHR\t/fr/docs/Web/API/Fetch\n")

	output, err := runRedirmap(t, "--root", root, "list")
	require.NoError(t, err)
	assert.Equal(t,
		"# en-US: 1 entries\n"+
			"/en-US/docs/Web/XHR\t/en-US/docs/Web/API/Fetch\n"+
			"# fr: 1 entries\n"+
			"/fr/docs/Web/XHR\t/fr/docs/Web/API/Fetch\n",
		output)

	// A locale argument narrows the listing
	output, err = runRedirmap(t, "--root", root, "list", "fr")
	require.NoError(t, err)
	assert.NotContains(t, output, "en-US")
	assert.Contains(t, output, "/fr/docs/Web/XHR")
}

func TestGenConfigCommand(t *testing.T) {
	t.Run("prints to stdout", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()

		output, err := runRedirmap(t, "--root", root, "genconfig")
		require.NoError(t, err)
		assert.Contains(t, output, "[output]")
		assert.Contains(t, output, "# color = \"auto\"")
	})

	t.Run("writes once", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()

		_, err := runRedirmap(t, "--root", root, "genconfig", "--write")
		require.NoError(t, err)

		raw, readErr := os.ReadFile(filepath.Join(root, ".redirmap.toml"))
		require.NoError(t, readErr)
		assert.Contains(t, string(raw), "# locate_size = 4096")

		_, err = runRedirmap(t, "--root", root, "genconfig", "--write")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess), "got %v", err)
	})
}

func TestRootFlagMustExist(t *testing.T) {
	clearEnv(t)

	missing := filepath.Join(t.TempDir(), "gone")
	_, err := runRedirmap(t, "--root", missing, "validate")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound), "got %v", err)

	// A file is not a usable root either
	file := filepath.Join(t.TempDir(), "root.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = runRedirmap(t, "--root", file, "list")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound), "got %v", err)
}

func TestVersionCommand(t *testing.T) {
	output, err := runRedirmap(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "redirmap version")
}

func TestRootCommandRequiresSubcommand(t *testing.T) {
	_, err := runRedirmap(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

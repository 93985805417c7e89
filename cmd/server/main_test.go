package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcescore/internal/domain"
	"sourcescore/internal/services/scoring"
)

const testCache = `{
	"nytimes.com": {"label": "generally reliable", "notes": ""},
	"example.com": {"label": "mixed", "notes": "Case by case"}
}`

// isolate runs the test from an empty directory so the default sqlite store
// and config lookup stay inside it.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "DATABASE_URL", "STORE_DRIVER", "SQLITE_PATH", "RULES_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCache(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rsp_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(testCache), 0o644))
	return path
}

func TestScoreCommandJSON(t *testing.T) {
	isolate(t)
	cache := writeCache(t)

	out, err := runCLI(t, "score", "www.nytimes.com", "--rsp-file", cache, "--format", "json")
	require.NoError(t, err)

	var res domain.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 95, res.Quality)
	assert.Equal(t, "generally reliable", res.Label)
	assert.Equal(t, []string{scoring.AdviceHighScore}, res.Recommendations)
}

func TestScoreCommandWithCSL(t *testing.T) {
	isolate(t)
	cache := writeCache(t)
	item := filepath.Join(t.TempDir(), "item.json")
	require.NoError(t, os.WriteFile(item, []byte(`{"type": "webpage", "URL": "https://blog.example.com/post"}`), 0o644))

	out, err := runCLI(t, "score", "--csl", item, "--rsp-file", cache, "--format", "json")
	require.NoError(t, err)

	var res domain.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	// 60 - 5 (parent domain) - 8 - 5 (blog) - 5 (webpage) = 37
	assert.Equal(t, 37, res.Quality)
	assert.Equal(t, domain.MatchAncestor, res.Match)
}

func TestScoreCommandMissingDomain(t *testing.T) {
	isolate(t)
	cache := writeCache(t)

	_, err := runCLI(t, "score", "--context", "some claim", "--rsp-file", cache)
	assert.ErrorIs(t, err, domain.ErrMissingDomain)
}

func TestLookupCommandText(t *testing.T) {
	isolate(t)
	cache := writeCache(t)

	out, err := runCLI(t, "lookup", "news.example.com", "--rsp-file", cache)
	require.NoError(t, err)
	assert.Contains(t, out, "news.example.com")
	assert.Contains(t, out, "match ancestor (example.com)")
	assert.Contains(t, out, "Case by case (parent domain)")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sourcescore version dev\n", out)
}

func TestImportThenLookupFromStore(t *testing.T) {
	isolate(t)
	cache := filepath.Join(t.TempDir(), "rsp_cache.json")
	require.NoError(t, os.WriteFile(cache, []byte(`{
		"WWW.Reuters.com": {"label": "generally reliable", "notes": " wire service "},
		"co.uk": {"label": "reliable", "notes": ""},
		"nolabel.org": {"label": "", "notes": ""}
	}`), 0o644))

	out, err := runCLI(t, "import", cache)
	require.NoError(t, err)
	assert.Equal(t, "merged 1 entries (2 skipped)\n", out)

	out, err = runCLI(t, "lookup", "reuters.com", "--format", "json")
	require.NoError(t, err)
	var info domain.LookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, domain.MatchExact, info.Match)
	assert.Equal(t, "wire service", info.Notes)
	assert.Equal(t, 85, info.BaseScore)

	_, err = runCLI(t, "import", "--strict", cache)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/peoplegen/internal/corpus"
)

func TestDataDir(t *testing.T) {
	tests := []struct {
		name    string
		dataDir string
		xdg     string
		want    string
		suffix  bool
	}{
		{"explicit", "/srv/peoplegen", "/custom/data", "/srv/peoplegen", false},
		{"xdg set", "", "/custom/data", "/custom/data/peoplegen", false},
		{"xdg empty falls back to home", "", "", "/.local/share/peoplegen", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.dataDir)
			t.Setenv("XDG_DATA_HOME", tt.xdg)

			got := DataDir()
			if tt.suffix {
				assert.True(t, strings.HasSuffix(got, tt.want), "DataDir() = %s, want suffix %s", got, tt.want)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpusPaths(t *testing.T) {
	t.Setenv(EnvMaleFirstNames, "/env/male.txt")
	t.Setenv(EnvFemaleFirstNames, "/env/female.txt")
	t.Setenv(EnvLastNames, "")

	got := CorpusPaths(corpus.Paths{Female: "/flag/female.txt"})
	assert.Equal(t, corpus.Paths{Male: "/env/male.txt", Female: "/flag/female.txt"}, got)

	err := CheckCorpusPaths(got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLastNames)

	got.Last = "/x"
	assert.NoError(t, CheckCorpusPaths(got))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(env, []byte(EnvLastNames+"=/dotenv/last.txt\n"), 0o600))

	t.Setenv(EnvLastNames, "")
	os.Unsetenv(EnvLastNames)

	require.NoError(t, LoadDotEnv(env, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "/dotenv/last.txt", os.Getenv(EnvLastNames))
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte(EnvMaleFirstNames+"=/dotenv/male.txt\n"), 0o600))

	t.Setenv(EnvMaleFirstNames, "/shell/male.txt")
	require.NoError(t, LoadDotEnv(env))
	assert.Equal(t, "/shell/male.txt", os.Getenv(EnvMaleFirstNames))
}

package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreApplied(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ReadConfig("")
	require.NoError(t, err)

	require.Equal(t, "NeonLeaf", cfg.Title)
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, 5, cfg.PageSize)
	require.Equal(t, int64(50*1024*1024), cfg.ImportMaxFileSize)
	require.True(t, cfg.Gate.Enabled)
	require.Equal(t, "Sampras", cfg.Gate.Password)
	require.Equal(t, SQLITE, cfg.DBType)
	require.Equal(t, "0.0.0.0:9001", cfg.Address())
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NEONLEAF_PORT", "9999")
	t.Setenv("NEONLEAF_GATE_PASSWORD", "open-sesame")
	t.Setenv("NEONLEAF_DBTYPE", "memory")

	cfg, err := ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "open-sesame", cfg.Gate.Password)
	require.Equal(t, MEMORY, cfg.DBType)
}

func TestReadConfigFromJSON(t *testing.T) {
	cfg, err := ReadConfig(`{"title": "Releases", "pageSize": 10, "gate": {"enabled": false}, "dbType": "postgres"}`)
	require.NoError(t, err)
	require.Equal(t, "Releases", cfg.Title)
	require.Equal(t, 10, cfg.PageSize)
	require.False(t, cfg.Gate.Enabled)
	require.Equal(t, POSTGRES, cfg.DBType)
}

func TestReadConfigFromSettingsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": "8080"}`), 0o600))
	t.Setenv(SettingsPathEnv, path)

	cfg, err := ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
}

func TestZeroImportLimitIsAccepted(t *testing.T) {
	cfg, err := ReadConfig(`{"importMaxFileSize": 0}`)
	require.NoError(t, err)
	require.Zero(t, cfg.ImportMaxFileSize)

	_, err = ReadConfig(`{"importMaxFileSize": -1}`)
	require.Error(t, err)
}

func TestInvalidSettingsAreRejected(t *testing.T) {
	_, err := ReadConfig(`{"dbType": "mongo"}`)
	require.Error(t, err)

	_, err = ReadConfig(`{"pageSize": 0}`)
	require.Error(t, err)

	_, err = ReadConfig(`{"gate": {"enabled": true, "password": ""}}`)
	require.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	_, err := ReadConfig(`{"gate": {"password": "secret"}}`)
	require.NoError(t, err)

	var out bytes.Buffer
	ConfigShow(&out)
	assert.Contains(t, out.String(), "NEONLEAF_GATE_PASSWORD")
	assert.NotContains(t, out.String(), "secret ")

	out.Reset()
	require.NoError(t, ConfigGet(&out, PageSize))
	assert.Equal(t, "5\n", out.String())

	require.Error(t, ConfigGet(&out, "nope"))

	out.Reset()
	ConfigEnv(&out)
	assert.Contains(t, out.String(), "NEONLEAF_DBSETTINGS_FILENAME")

	out.Reset()
	require.NoError(t, ConfigInit(&out))
	assert.Contains(t, out.String(), `"pageSize": 5`)
}

func TestParseDBType(t *testing.T) {
	dbType, err := ParseDBType(" SQLite ")
	require.NoError(t, err)
	require.Equal(t, SQLITE, dbType)

	_, err = ParseDBType("mysql")
	require.Error(t, err)
}

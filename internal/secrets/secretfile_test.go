package secrets

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dbSecrets struct {
	ConnectionString string `json:"connectionString" yaml:"connectionString"`
}

func TestSecretFilePath(t *testing.T) {
	svc := newTestService(afero.NewMemMapFs(), "workstation")
	svc.OverrideIsDevelopmentMachine(true)

	path, err := svc.SecretFilePath("db.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "Secrets", "db.json"), path)
}

func TestLoadSecretFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/app", "Secrets")
	require.NoError(t, fs.MkdirAll(dir, 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "db.jsonc"), []byte(`{
		// local only
		"connectionString": "Server=db;",
	}`), 0644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "db.yaml"), []byte("connectionString: Server=yaml;\n"), 0644))

	svc := newTestService(fs, "server01")

	var fromJSON dbSecrets
	require.NoError(t, svc.LoadSecretFile("db.jsonc", false, &fromJSON))
	assert.Equal(t, "Server=db;", fromJSON.ConnectionString)

	var fromYAML dbSecrets
	require.NoError(t, svc.LoadSecretFile("db.yaml", false, &fromYAML))
	assert.Equal(t, "Server=yaml;", fromYAML.ConnectionString)
}

func TestLoadSecretFileOptional(t *testing.T) {
	svc := newTestService(afero.NewMemMapFs(), "server01")

	v := dbSecrets{ConnectionString: "unchanged"}
	require.NoError(t, svc.LoadSecretFile("missing.json", true, &v))
	assert.Equal(t, "unchanged", v.ConnectionString)

	err := svc.LoadSecretFile("missing.json", false, &v)
	assert.Error(t, err)
}

package secrets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretsdir/internal/fsutil"
)

func TestFindListFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, "workstation")

	_, found := svc.FindListFile(DefaultListFileName)
	assert.False(t, found)

	writeList(t, fs, devList, "workstation")
	path, found := svc.FindListFile(DefaultListFileName)
	require.True(t, found)
	assert.Equal(t, devList, path)

	writeList(t, fs, nonDevList, "server")
	path, found = svc.FindListFile(DefaultListFileName)
	require.True(t, found)
	assert.Equal(t, nonDevList, path)
}

func TestSaveAndLoadDevelopmentMachineNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(devList), 0755))
	svc := newTestService(fs, "workstation")

	require.NoError(t, svc.SaveDevelopmentMachineNames(devList, []string{"a", "b"}))
	names, err := svc.LoadDevelopmentMachineNames(devList)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestSaveDevelopmentMachineNamesUnwritable(t *testing.T) {
	svc := newTestService(afero.NewReadOnlyFs(afero.NewMemMapFs()), "workstation")

	err := svc.SaveDevelopmentMachineNames(devList, []string{"a"})
	var fae *fsutil.FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, devList, fae.Path)
}

func TestLoadDevelopmentMachineNamesMissing(t *testing.T) {
	svc := newTestService(afero.NewMemMapFs(), "workstation")

	_, err := svc.LoadDevelopmentMachineNames(devList)
	require.Error(t, err)
	assert.True(t, fsutil.IsNotExist(err))
}

func TestAddMachineNames(t *testing.T) {
	got, changed := AddMachineNames([]string{"a"}, "b", "a", "", "c", "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	original := []string{"a", "b"}
	got, changed = AddMachineNames(original, "a")
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b"}, got)

	got, _ = AddMachineNames(original, "z")
	assert.Equal(t, []string{"a", "b"}, original, "input is not modified")
	assert.Equal(t, []string{"a", "b", "z"}, got)
}

func TestRemoveMachineNames(t *testing.T) {
	got, changed := RemoveMachineNames([]string{"a", "b", "a", "c"}, "a")
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c"}, got)

	got, changed = RemoveMachineNames([]string{"a"}, "A")
	assert.False(t, changed)
	assert.Equal(t, []string{"a"}, got)
}

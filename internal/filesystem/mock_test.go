package filesystem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_CreateAndOverwrite(t *testing.T) {
	fs := NewMockFileSystem()

	require.False(t, fs.Exists("/workspace/package.json"))

	require.NoError(t, fs.Create("/workspace/package.json", []byte("{}")))
	require.True(t, fs.Exists("/workspace/package.json"))

	err := fs.Create("/workspace/package.json", []byte("{}"))
	require.Error(t, err, "creating an existing file should fail")

	require.NoError(t, fs.Overwrite("/workspace/package.json", []byte(`{"name":"x"}`)))

	data, err := fs.ReadFile("/workspace/package.json")
	require.NoError(t, err)
	require.Equal(t, `{"name":"x"}`, string(data))
}

func TestMockFileSystem_OverwriteMissing(t *testing.T) {
	fs := NewMockFileSystem()

	err := fs.Overwrite("/workspace/missing.json", []byte("{}"))
	require.Error(t, err)
}

func TestMockFileSystem_Getwd(t *testing.T) {
	fs := NewMockFileSystem()

	cwd, err := fs.Getwd()
	require.NoError(t, err)
	require.Equal(t, "/workspace", cwd)

	fs.SetCurrentDir("/elsewhere")
	cwd, err = fs.Getwd()
	require.NoError(t, err)
	require.Equal(t, "/elsewhere", cwd)
}

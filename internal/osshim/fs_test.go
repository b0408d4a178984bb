package osshim

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsFromMap(t *testing.T) {
	fs, err := FsFromMap(map[string]string{
		"/home/.aws/config": "[default]\nregion = us-east-1\n",
		"test_config":       "[profile a]\n",
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/home/.aws/config")
	require.NoError(t, err)
	assert.Equal(t, "[default]\nregion = us-east-1\n", string(data))

	data, err = afero.ReadFile(fs, "test_config")
	require.NoError(t, err)
	assert.Equal(t, "[profile a]\n", string(data))

	_, err = afero.ReadFile(fs, "/home/.aws/credentials")
	assert.Error(t, err)
}

func TestRealFs_NotNil(t *testing.T) {
	assert.NotNil(t, RealFs())
}

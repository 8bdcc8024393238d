package script

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scripts/basic.etree", []byte("insert a 1\nfind a\n"), 0644))

	cmds, err := Load(fs, "/scripts/basic.etree")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, OpInsert, cmds[0].Op)
	assert.Equal(t, OpFind, cmds[1].Op)
}

func Test_Load_notExist(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/scripts/missing.etree")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open script failed")
}

func Test_Load_invalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.etree", []byte("jump a\n"), 0644))

	_, err := Load(fs, "bad.etree")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "parse script bad.etree")
}

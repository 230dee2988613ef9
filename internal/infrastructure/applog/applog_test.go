package applog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/infrastructure/applog"
)

func TestAppend_CreaYAcumula(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jobs.log")
	f := applog.Open(path)

	require.NoError(t, f.Append("uno\n"))
	require.NoError(t, f.Append("dos"))
	require.NoError(t, f.Append("-tres\n"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "uno\ndos-tres\n", string(raw))
	assert.Equal(t, path, f.Path())
}

func TestOpen_NoCreaArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.log")
	applog.Open(path)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAppend_RespetaContenidoPrevio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.log")
	require.NoError(t, os.WriteFile(path, []byte("previo\n"), 0o644))

	require.NoError(t, applog.Open(path).Append("nuevo\n"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previo\nnuevo\n", string(raw))
}

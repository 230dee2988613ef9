package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/infrastructure/applog"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func TestJobLog_IncluyeBitacoraYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	path := filepath.Join(t.TempDir(), "heartbeat.log")

	l := jobLog(log, applog.Open(path))
	l.Info().Msg("job iniciado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, path, entry["log_file"])
	assert.Equal(t, "jobs", entry["component"])
}

func TestNewRootCmd_RegistraLosCuatroJobs(t *testing.T) {
	cmd := newRootCmd(&config.Config{}, logger.Nop())
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"heartbeat", "report", "reminders", "cleanup"}, names)
}

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizreview/internal/config"
	"bizreview/internal/database/migration"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	up, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())

	status, _, err := root.Find([]string{"migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, "status", status.Name())
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	cmd := migrateStatusCmd()
	cmd.SetOut(&buf)

	err := printStatus(cmd, []migration.StepStatus{
		{Version: 1, Name: "00001_create_businesses.sql", Applied: true, AppliedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Version: 2, Name: "00002_create_review.sql"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "VERSION")
	assert.Contains(t, lines[1], "2024-03-01T10:00:00Z")
	assert.Contains(t, lines[2], "pending")
}

func TestNewVerifier(t *testing.T) {
	v, err := newVerifier(config.AuthConfig{})
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = newVerifier(config.AuthConfig{Secret: "k"})
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestNewPublisher_Disabled(t *testing.T) {
	p := newPublisher(config.AMQPConfig{})
	assert.NoError(t, p.Close())
}

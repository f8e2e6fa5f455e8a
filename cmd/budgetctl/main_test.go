package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../internal/repositories/seed/testdata/seed.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("JWT_SECRET", "cli-test-secret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--seed", seedPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "-o", "text", "convert", "100", "eur", "usd")
	require.NoError(t, err)
	assert.Equal(t, "100 eur = 110 usd\n", out)
}

func TestConvertCommand_NoInverse(t *testing.T) {
	_, err := execute(t, "-o", "text", "convert", "100", "usd", "eur")
	assert.Error(t, err)
}

func TestTotalCommand_JSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "total", "--user", "user-1", "--currency", "usd",
		"--start", "2024-01-01", "--end", "2024-01-31", "--category", "")
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "135.5", resp["total"])
	assert.Equal(t, true, resp["complete"])
}

func TestBudgetStatusCommand(t *testing.T) {
	out, err := execute(t, "-o", "text", "budget", "status", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, "consumed   67.75%")
	assert.Contains(t, out, "alert      false (threshold 80%)")
}

func TestBudgetAlertCommand_UnknownBudget(t *testing.T) {
	out, err := execute(t, "-o", "yaml", "budget", "alert", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "alerttriggered: false")
}

func TestUnsupportedOutput(t *testing.T) {
	_, err := execute(t, "-o", "xml", "rates")
	assert.Error(t, err)
}

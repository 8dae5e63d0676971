package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "10", want: 10},
		{name: "fraction", input: "2.5", want: 2.5},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--session-file", filepath.Join(t.TempDir(), "session.yaml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCallRejectsInvalidJSON(t *testing.T) {
	_, err := execute(t, "call", "POST", "/bases", "{not json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON body")
}

func TestStateWithoutLogin(t *testing.T) {
	_, err := execute(t, "state")

	assert.Error(t, err)
}

func TestLoginRequiresPassword(t *testing.T) {
	t.Setenv(envPassword, "")

	_, err := execute(t, "login", "guild-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password required")
}

func TestDepositRejectsBadAmount(t *testing.T) {
	_, err := execute(t, "deposit", "abc", "TS")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

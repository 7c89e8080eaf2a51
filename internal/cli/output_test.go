package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbite/moodbite/internal/server"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(server.ErrCodeUnknownRoute, "no such endpoint", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, server.ErrCodeUnknownRoute, resp.Error.Code)
	assert.Equal(t, "no such endpoint", resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("Database seeded with 2 users.")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Database seeded with 2 users.")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error(server.ErrCodeInvalidPayload, "item is required", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [INVALID_PAYLOAD]")
	assert.Contains(t, buf.String(), "item is required")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	details := map[string]string{"endpoint": "/api/orders/place"}
	err := formatter.Error(server.ErrCodeInvalidPayload, "item is required", details)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [INVALID_PAYLOAD]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("seeded %s", "moodbite.db")

			if tt.wantLog {
				assert.Contains(t, buf.String(), "seeded moodbite.db")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    outBuf,
		ErrWriter: errBuf,
		Verbose:   true,
	}

	formatter.VerboseLog("diagnostic line")

	assert.Empty(t, outBuf.String())
	assert.Contains(t, errBuf.String(), "diagnostic line")
}

func TestExitError(t *testing.T) {
	base := errors.New("disk full")
	wrapped := WrapExitError(ExitCommandError, "seeding database", base)

	assert.Equal(t, "seeding database: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))

	plain := NewExitError(ExitFailure, "login rejected")
	assert.Equal(t, "login rejected", plain.Error())
	assert.Equal(t, ExitFailure, GetExitCode(plain))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
}

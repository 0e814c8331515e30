package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "authentication failed")
	assert.Equal(t, "authentication failed", err.Error())
	assert.Equal(t, ExitFailure, GetExitCode(err))

	wrapped := WrapExitError(ExitCommandError, "failed to load config", errors.New("no such file"))
	assert.Equal(t, "failed to load config: no such file", wrapped.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.ErrorContains(t, wrapped.Unwrap(), "no such file")
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
}

func TestOutputFormatter_SuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Success(map[string]int{"count": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_ErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Error("E001", "something failed", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E001", resp.Error.Code)
}

func TestOutputFormatter_ErrorText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Error("E001", "something failed", nil))
	assert.Contains(t, buf.String(), "Error [E001]: something failed")
}

func TestOutputFormatter_Warn(t *testing.T) {
	var out, errw bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errw}

	f.Warn("receipt %s not durably saved", "FSE-240101-001")

	assert.Empty(t, out.String())
	assert.Contains(t, errw.String(), "warning: receipt FSE-240101-001 not durably saved")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	var buf bytes.Buffer

	quiet := &OutputFormatter{Format: "text", Writer: &buf}
	quiet.VerboseLog("hidden")
	assert.Empty(t, buf.String())

	loud := &OutputFormatter{Format: "text", Writer: &buf, Verbose: true}
	loud.VerboseLog("shown")
	assert.Contains(t, buf.String(), "shown")
}

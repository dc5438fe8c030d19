package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/futig/edututor/internal/entity"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"explain", "quiz", "login"}, names)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, printResult(&buf, "❌ Model not loaded"))
	assert.Equal(t, "❌ Model not loaded\n", buf.String())
}

func setMockEnv(t *testing.T) {
	t.Helper()

	t.Setenv("ENABLE_MOCKS", "true")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("QUIZ_TOKEN_ENCODING", "none")
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "1234")
	t.Setenv("DATABASE_URL", "")
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(context.Background(), append([]string{"edututor-cli", "--env", "cli-test"}, args...))
	return out.String(), err
}

func writePDF(t *testing.T, text string) string {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(0, 10, text)

	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestExplainCommand(t *testing.T) {
	setMockEnv(t)

	out, err := runApp(t, "--username", "admin", "--password", "1234", "explain", "--concept", "Gravity", "--language", "Hindi")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[hi] "), out)
}

func TestExplainCommand_RequiresLogin(t *testing.T) {
	setMockEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no credentials", args: []string{"explain", "--concept", "Gravity"}},
		{name: "wrong password", args: []string{"--username", "admin", "--password", "0000", "explain", "--concept", "Gravity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)

			require.ErrorIs(t, err, errLoginFailed)
			assert.Equal(t, entity.MsgLoginFailed, err.Error())
			assert.Empty(t, out)
		})
	}
}

func TestQuizCommand(t *testing.T) {
	setMockEnv(t)
	path := writePDF(t, "Photosynthesis turns light into sugar.")

	out, err := runApp(t, "-u", "admin", "-p", "1234", "quiz", "--file", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Q1:")
	assert.Contains(t, out, "Correct Answer:")
}

func TestQuizCommand_RequiresLogin(t *testing.T) {
	setMockEnv(t)
	path := writePDF(t, "Photosynthesis turns light into sugar.")

	out, err := runApp(t, "quiz", "--file", path)

	require.ErrorIs(t, err, errLoginFailed)
	assert.Empty(t, out)
}

func TestLoginCommand(t *testing.T) {
	setMockEnv(t)

	out, err := runApp(t, "--username", "admin", "--password", "1234", "login")
	require.NoError(t, err)
	assert.Equal(t, entity.MsgLoginSuccess+"\n", out)

	out, err = runApp(t, "--username", "admin", "--password", "nope", "login")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
	assert.Equal(t, entity.MsgLoginFailed+"\n", out)
}

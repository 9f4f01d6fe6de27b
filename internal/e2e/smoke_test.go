package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			w.WriteHeader(http.StatusCreated)
			_, _ = fmt.Fprint(w, `{"access_token":"smoke-token","user":{"id":1,"email":"smoke@example.com","username":"smoke"}}`)
		case "/chat/message":
			assert.Equal(t, "Bearer smoke-token", r.Header.Get("Authorization"))
			_, _ = fmt.Fprint(w, `{"response":"Let's get moving!","intent":"motivation","sentiment":"positive"}`)
		case "/profile":
			_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"smoke@example.com","username":"smoke"}}`)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runFitcoach(t, binaryPath, home, server.URL,
		"register",
		"--email", "smoke@example.com",
		"--username", "smoke",
		"--password", "hunter2",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Welcome to FitCoach, smoke!")

	stdout, stderr, err = runFitcoach(t, binaryPath, home, server.URL, "chat", "I need a push today")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Coach: Let's get moving!")

	stdout, stderr, err = runFitcoach(t, binaryPath, home, server.URL, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed in as smoke (smoke@example.com)")

	stdout, stderr, err = runFitcoach(t, binaryPath, home, server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed out.")

	stdout, stderr, err = runFitcoach(t, binaryPath, home, server.URL, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Not signed in.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "fitcoach-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fitcoach")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build fitcoach binary: %s", string(output))
	return binaryPath
}

func runFitcoach(t *testing.T, binaryPath, home, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "FITCOACH_API_URL="+apiURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

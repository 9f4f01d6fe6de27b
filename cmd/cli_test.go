package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequiresEmailFlag(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, nil,
		"register",
		"--username", "casey",
		"--password", "hunter2",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"email\" not set")
}

func TestRegisterSignsInAndPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "casey@example.com", payload["email"])
		assert.Equal(t, "casey", payload["username"])
		assert.Equal(t, "intermediate", payload["fitness_level"])

		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprint(w, `{"access_token":"token-123","user":{"id":1,"email":"casey@example.com","username":"casey"}}`)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, nil,
		"register",
		"--email", "casey@example.com",
		"--username", "casey",
		"--password", "hunter2",
		"--fitness-level", "intermediate",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Welcome to FitCoach, casey!")

	data, err := os.ReadFile(filepath.Join(home, ".fitcoach", "session.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "token-123")
}

func TestStatusNotSignedIn(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, nil, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in.")
}

func TestLoginThenStatusShowsProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_, _ = fmt.Fprint(w, `{"access_token":"token-456","user":{"id":1,"email":"casey@example.com","username":"casey"}}`)
		case "/profile":
			assert.Equal(t, "Bearer token-456", r.Header.Get("Authorization"))
			_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"casey@example.com","username":"casey","full_name":"Casey Woods","fitness_level":"intermediate","fitness_goal":"weight_loss"}}`)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, nil, "login", "--email", "casey@example.com", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as casey")

	stdout, _, err = executeCLI(t, home, nil, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as casey (casey@example.com)")
	assert.Contains(t, stdout, "Name: Casey Woods")
	assert.Contains(t, stdout, "Goal: weight_loss")
}

func TestStatusJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"casey@example.com","username":"casey"}}`)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "status", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Email\": \"casey@example.com\"")
}

func TestLogoutRemovesStoredSession(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out.")

	_, err = os.Stat(filepath.Join(home, ".fitcoach", "session.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestChatPrintsCoachReplyAndSuggestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/message", r.URL.Path)
		assert.Equal(t, "Bearer token-789", r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "how do I start running", payload["message"])

		_, _ = fmt.Fprint(w, `{"response":"Start with a couch-to-5k plan.","intent":"training","sentiment":"positive","suggestions":["Run 3 times a week","Rest between sessions"]}`)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "chat", "how", "do", "I", "start", "running")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Coach: Start with a couch-to-5k plan.")
	assert.Contains(t, stdout, "- Run 3 times a week")
	assert.Contains(t, stdout, "- Rest between sessions")
}

func TestChatHistoryPrintsTurns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/history", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = fmt.Fprint(w, `{"messages":[{"message":"hi","response":"Hello! Ready to train?","timestamp":"2026-08-29T09:00:00Z"}]}`)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "chat", "history", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You: hi")
	assert.Contains(t, stdout, "Coach: Hello! Ready to train?")
	assert.Contains(t, stdout, "[2026-08-29T09:00:00Z]")
}

func TestChatClearAbortsWithoutConfirmation(t *testing.T) {
	var deleted bool
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, strings.NewReader("n\n"), "chat", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Aborted.")
	assert.False(t, deleted)
}

func TestChatClearWithConfirmation(t *testing.T) {
	var deleted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/history", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, strings.NewReader("y\n"), "chat", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Conversation history cleared.")
	assert.True(t, deleted)
}

func TestChatClearYesFlagSkipsPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "chat", "clear", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "[y/N]")
	assert.Contains(t, stdout, "Conversation history cleared.")
}

func TestExpiredSessionClearsStoredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error":"token expired"}`)
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	_, _, err := executeCLI(t, home, nil, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session invalidated")

	_, err = os.Stat(filepath.Join(home, ".fitcoach", "session.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestDashboardRendersSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/profile":
			_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"casey@example.com","username":"casey","full_name":"Casey Woods"}}`)
		case "/profile/statistics":
			_, _ = fmt.Fprint(w, `{"total_workouts":12,"completed":9,"planned":3,"total_calories_burned":3150,"total_minutes_exercised":420}`)
		case "/workouts":
			assert.Equal(t, "completed", r.URL.Query().Get("status"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = fmt.Fprint(w, `{"workouts":[{"id":4,"workout_type":"cardio","duration_minutes":30,"calories_burned":250,"status":"completed","completed_date":"2026-08-28"}],"total":1}`)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FitCoach Dashboard")
	assert.Contains(t, stdout, "Welcome back, Casey Woods!")
	assert.Contains(t, stdout, "cardio")
}

func TestDashboardJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/profile":
			_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"casey@example.com","username":"casey"}}`)
		case "/profile/statistics":
			_, _ = fmt.Fprint(w, `{"total_workouts":2,"completed":2}`)
		case "/workouts":
			_, _ = fmt.Fprint(w, `{"workouts":[],"total":0}`)
		}
	}))
	defer server.Close()

	t.Setenv("FITCOACH_API_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, "token-789"))

	stdout, _, err := executeCLI(t, home, nil, "dashboard", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"TotalWorkouts\": 2")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func executeCLI(t *testing.T, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSessionFixture(home string, token string) error {
	configDir := filepath.Join(home, ".fitcoach")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	session := fmt.Sprintf("version = 1\n\n[session]\ntoken = %q\n", token)

	return os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o600)
}

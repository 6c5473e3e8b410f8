package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgate/passgate/internal/api"
	"github.com/passgate/passgate/internal/factory"
	"github.com/passgate/passgate/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "passgate-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/passgate")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithStdin(stdin string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	projectRoot := findProjectRoot(t)
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		StrengthService: app.StrengthService,
		DenylistService: app.DenylistService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		StaticDir: filepath.Join(projectRoot, "internal/web/static"),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type verdictResponse struct {
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	Strength string   `json:"strength"`
	Entropy  float64  `json:"entropy"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type policyResponse struct {
	MinLength       int `json:"min_length"`
	MaxLength       int `json:"max_length"`
	CommonPasswords int `json:"common_passwords"`
	KeyboardWalks   int `json:"keyboard_walks"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_CheckValidPassword(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("check", "Horse7#battery")
	require.NoError(t, err, "output: %s", output)

	var resp verdictResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 85, resp.Score)
	assert.Equal(t, "Very Strong", resp.Strength)
	assert.Empty(t, resp.Errors)
}

func TestCLI_CheckInvalidPasswordExitsNonZero(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("check", "password")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	// The verdict is still printed before exiting
	var resp verdictResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors, "Password is too common. Please choose a more unique password.")
}

func TestCLI_CheckFromStdin(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.runWithStdin("Horse7#battery\n", "check", "-")
	require.NoError(t, err, "output: %s", output)

	var resp verdictResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 85, resp.Score)
}

func TestCLI_Policy(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("policy")
	require.NoError(t, err, "output: %s", output)

	var resp policyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, 12, resp.MinLength)
	assert.Equal(t, 128, resp.MaxLength)
	assert.Equal(t, 35, resp.CommonPasswords)
	assert.Equal(t, 12, resp.KeyboardWalks)
}

func TestCLI_TextOutput(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	cmd := exec.Command(cli.binaryPath, "--server", cli.serverURL, "check", "Horse7#battery")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, string(output), "Valid: yes")
	assert.Contains(t, string(output), "Score: 85/100")
	assert.Contains(t, string(output), "Strength: Very Strong")
}

func TestWebPageServed(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	resp, err := http.Get(ts.addr + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

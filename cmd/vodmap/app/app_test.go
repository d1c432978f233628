package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// liveChecker reports every endpoint as live.
type liveChecker struct{}

func (liveChecker) Check(context.Context, string) (probe.Outcome, error) {
	return probe.Live, nil
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	isolate(t)
	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", append([]Option{WithLogger(&logger)}, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.UserAgent() != "vodmap/1.0.0" {
		t.Errorf("UserAgent() = %s, want vodmap/1.0.0", app.UserAgent())
	}
}

// TestApp_Checker_Singleton verifies Checker() is built once, even concurrently.
func TestApp_Checker_Singleton(t *testing.T) {
	app := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]probe.Checker, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = app.Checker()
		}(i)
	}
	wg.Wait()

	for i, c := range results {
		if c != results[0] {
			t.Fatalf("Checker() call %d returned a different instance", i)
		}
	}
}

// TestApp_Pacing verifies NoDelay switches the delays off.
func TestApp_Pacing(t *testing.T) {
	app := newTestApp(t)
	if app.Pacing() != pacing.Default() {
		t.Errorf("Pacing() = %+v, want default", app.Pacing())
	}

	app.Config().NoDelay = true
	if app.Pacing() != pacing.None() {
		t.Errorf("Pacing() = %+v, want none", app.Pacing())
	}
}

// TestApp_Discover runs the pipeline against a local code search server
// using only configuration, the way the discover command does.
func TestApp_Discover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count":0,"incomplete_results":false,"items":[]}`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "sites.json")
	t.Setenv("SEARCH_API_URL", srv.URL)
	t.Setenv("CATALOG_PATH", catalogPath)
	t.Setenv("NO_DELAY", "true")

	app := newTestApp(t, WithChecker(liveChecker{}))

	result, err := app.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if result.CatalogPath != catalogPath {
		t.Errorf("CatalogPath = %q, want %q", result.CatalogPath, catalogPath)
	}
	if result.Summary() != "Updated "+catalogPath+" with 0 new APIs." {
		t.Errorf("Summary() = %q", result.Summary())
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		t.Fatalf("catalog not written: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("catalog = %q, want empty array", data)
	}
}

// TestApp_Execute runs the CLI end to end on a saved catalog.
func TestApp_Execute(t *testing.T) {
	app := newTestApp(t)

	cat := catalogs.Catalog{
		{ID: "a_example", Name: "a example", BaseURL: "http://a.example/api.php/provide/vod", Group: "normal", Enabled: true, Priority: 1},
	}
	if err := catalogs.Save(app.CatalogPath(), cat); err != nil {
		t.Fatal(err)
	}

	rootCmd := app.createRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "-o", "json", "--log-level", "error"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var got []catalogs.Entry
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got) != 1 || got[0].ID != "a_example" {
		t.Errorf("list output = %+v", got)
	}
	if app.Config().LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", app.Config().LogLevel)
	}
}

// TestApp_Shutdown verifies Shutdown succeeds.
func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t)
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

// TestExitCode verifies invalid input exits with 2.
func TestExitCode(t *testing.T) {
	if got := ExitCode(errors.NewValidationError("url", "x", "bad")); got != 2 {
		t.Errorf("ExitCode(validation) = %d, want 2", got)
	}
	if got := ExitCode(errors.NewAPIError("code search", 0, "request failed")); got != 1 {
		t.Errorf("ExitCode(api) = %d, want 1", got)
	}
}

package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/vodmap/cmd/application"
	"github.com/agentstation/vodmap/internal/cmd/output"
	liveness "github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/pkg/errors"
)

// stubChecker answers from a fixed table.
type stubChecker struct {
	outcomes map[string]liveness.Outcome
	calls    []string
}

func (s *stubChecker) Check(_ context.Context, baseURL string) (liveness.Outcome, error) {
	s.calls = append(s.calls, baseURL)
	outcome, ok := s.outcomes[baseURL]
	if !ok {
		return liveness.Failed, errors.New("connection refused")
	}
	if outcome == liveness.NotLive {
		return outcome, errors.NewAPIError("probe", 404, "Not Found")
	}
	return outcome, nil
}

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProbeJSON(t *testing.T) {
	checker := &stubChecker{outcomes: map[string]liveness.Outcome{
		"http://a.example/api.php/provide/vod": liveness.Live,
		"http://b.example/api.php/provide/vod": liveness.NotLive,
	}}
	app := &application.Mock{CheckerValue: checker, FormatValue: "json"}

	out, err := execute(t, app,
		"http://a.example/api.php/provide/vod",
		"http://b.example/api.php/provide/vod",
		"http://c.example/api.php/provide/vod",
	)
	require.NoError(t, err)

	var rows []Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, Row{URL: "http://a.example/api.php/provide/vod", Outcome: "Live"}, rows[0])
	assert.Equal(t, "NotLive", rows[1].Outcome)
	assert.Contains(t, rows[1].Detail, "404")
	assert.Equal(t, "Failed", rows[2].Outcome)
	assert.Contains(t, rows[2].Detail, "connection refused")

	assert.Equal(t, []string{
		"http://a.example/api.php/provide/vod",
		"http://b.example/api.php/provide/vod",
		"http://c.example/api.php/provide/vod",
	}, checker.calls)
}

func TestProbeTable(t *testing.T) {
	checker := &stubChecker{outcomes: map[string]liveness.Outcome{
		"http://a.example/api.php/provide/vod": liveness.Live,
	}}
	app := &application.Mock{CheckerValue: checker, FormatValue: "table"}

	out, err := execute(t, app, "http://a.example/api.php/provide/vod")
	require.NoError(t, err)
	assert.Contains(t, out, "http://a.example/api.php/provide/vod")
	assert.Contains(t, out, "Live")
}

func TestProbeFailFlag(t *testing.T) {
	checker := &stubChecker{outcomes: map[string]liveness.Outcome{
		"http://a.example/api.php/provide/vod": liveness.Live,
	}}
	app := &application.Mock{CheckerValue: checker, FormatValue: "json"}

	_, err := execute(t, app, "--fail", "http://a.example/api.php/provide/vod")
	require.NoError(t, err)

	_, err = execute(t, app, "--fail", "http://a.example/api.php/provide/vod", "http://gone.example/api.php/provide/vod")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestProbeRequiresArgs(t *testing.T) {
	_, err := execute(t, &application.Mock{CheckerValue: &stubChecker{}})
	require.Error(t, err)
}

func TestTableOrRowsWide(t *testing.T) {
	rows := []Row{{URL: "u", Outcome: "NotLive", Detail: "status 500"}}

	data, ok := tableOrRows("wide", rows).(output.Data)
	require.True(t, ok)
	assert.Equal(t, []string{"URL", "Outcome", "Detail"}, data.Headers)
	assert.Equal(t, [][]string{{"u", "NotLive", "status 500"}}, data.Rows)

	assert.Equal(t, rows, tableOrRows("json", rows))
}

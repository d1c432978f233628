package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/agentstation/vodmap/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewCommand(&application.Mock{VersionValue: "v1.2.3"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"vodmap version v1.2.3\n",
		"commit: unknown\n",
		"built by: test\n",
		"go version: " + runtime.Version(),
		"platform: " + runtime.GOOS + "/" + runtime.GOARCH,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

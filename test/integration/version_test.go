package integration_test

import (
	"os"
	"testing"

	"github.com/renato0307/alttext/test/integration/harness"
)

func TestVersion(t *testing.T) {
	if os.Getenv(harness.BinaryEnvVar) != "" {
		t.Skip("prebuilt binary carries its own version")
	}
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "alttext "+harness.BuildVersion+" (commit: unknown")
}

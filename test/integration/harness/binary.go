package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BinaryEnvVar points the harness at an already built alttext binary, which
// skips compilation (used by CI jobs that test the release artifact)
const BinaryEnvVar = "ALTTEXT_TEST_BINARY"

// BuildVersion is stamped into binaries built by the harness
const BuildVersion = "integration-test"

const defaultTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
	ownsBinary bool
)

// CommandResult holds the exit code and output of one alttext invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd into a temp directory once per test run, with
// main.Version set to BuildVersion. When BinaryEnvVar is set that binary is
// used as is.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		if prebuilt := os.Getenv(BinaryEnvVar); prebuilt != "" {
			binaryPath, buildErr = filepath.Abs(prebuilt)
			return
		}

		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		tempDir, err := os.MkdirTemp("", "alttext-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, "alttext")
		ownsBinary = true

		ldflags := "-X main.Version=" + BuildVersion
		cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binaryPath, "./cmd")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes a binary built by BuildBinary. Prebuilt binaries are
// left alone.
func CleanupBinary() {
	if !ownsBinary || binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand runs alttext with args inside env and the default timeout
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return runCommand(tb, env, defaultTimeout, args...)
}

func runCommand(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	err := cmd.Run()

	exitCode := 0
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("alttext %v timed out after %v", args, timeout)
		exitCode = -1
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("alttext %v failed to start: %v", args, err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

// moduleRoot returns the directory holding go.mod
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("failed to locate go.mod: %w", err)
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", errors.New("not inside a Go module")
	}
	return filepath.Dir(gomod), nil
}

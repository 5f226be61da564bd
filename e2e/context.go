package e2e

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	welcome = "Welcome to the assistant bot!"
	prompt  = "Enter a command: "
)

// TestContext runs the contactbook binary once per session against a scenario
// scoped data directory and keeps the replies of the last session.
type TestContext struct {
	binary   string
	dataDir  string
	file     string
	pending  []string
	replies  []string
	output   string
	exitCode int
}

// NewTestContext prepares a fresh data directory for one scenario.
func NewTestContext(binary string) (*TestContext, error) {
	dir, err := os.MkdirTemp("", "contactbook-e2e-*")
	if err != nil {
		return nil, err
	}
	return &TestContext{
		binary:  binary,
		dataDir: dir,
		file:    filepath.Join(dir, "addressbook.json"),
	}, nil
}

// Cleanup removes the scenario data directory.
func (tc *TestContext) Cleanup() {
	os.RemoveAll(tc.dataDir)
}

// SetSnapshotFile points the next sessions at another file name in the data
// directory.
func (tc *TestContext) SetSnapshotFile(name string) {
	tc.file = filepath.Join(tc.dataDir, name)
}

func (tc *TestContext) SnapshotFile() string {
	return tc.file
}

// Queue adds a command line to the next session.
func (tc *TestContext) Queue(line string) {
	tc.pending = append(tc.pending, line)
}

// RunSession feeds the queued lines to a new process and records its replies.
func (tc *TestContext) RunSession() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	input := strings.Join(tc.pending, "\n")
	if input != "" {
		input += "\n"
	}
	tc.pending = nil

	cmd := exec.CommandContext(ctx, tc.binary)
	cmd.Env = append(os.Environ(),
		"CONTACTBOOK_STORE=file",
		"CONTACTBOOK_FILE="+tc.file,
		"CONTACTBOOK_LOG_FILE="+os.DevNull,
	)
	cmd.Stdin = strings.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	tc.exitCode = 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("run %s: %w", tc.binary, err)
		}
		tc.exitCode = exitErr.ExitCode()
	}
	tc.output = stdout.String()
	tc.replies = splitReplies(tc.output)
	return nil
}

// splitReplies drops the greeting and prompts, leaving one entry per command.
// Multi-line replies stay joined.
func splitReplies(out string) []string {
	out = strings.TrimPrefix(out, welcome+"\n")
	var replies []string
	for _, chunk := range strings.Split(out, prompt) {
		chunk = strings.TrimSuffix(chunk, "\n")
		if chunk != "" {
			replies = append(replies, chunk)
		}
	}
	return replies
}

func (tc *TestContext) Replies() []string {
	return tc.replies
}

func (tc *TestContext) LastReply() string {
	if len(tc.replies) == 0 {
		return ""
	}
	return tc.replies[len(tc.replies)-1]
}

func (tc *TestContext) Output() string {
	return tc.output
}

func (tc *TestContext) ExitCode() int {
	return tc.exitCode
}

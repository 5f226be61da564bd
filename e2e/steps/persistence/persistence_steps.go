package persistence

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	SetSnapshotFile(name string)
	SnapshotFile() string
}

// RegisterSteps registers snapshot file step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &persistenceSteps{tc: tc}

	ctx.Step(`^the assistant stores contacts in "([^"]*)"$`, steps.storeIn)
	ctx.Step(`^the snapshot file is corrupted$`, steps.corruptSnapshot)
	ctx.Step(`^the snapshot file should contain "([^"]*)"$`, steps.snapshotShouldContain)
	ctx.Step(`^no snapshot file should exist$`, steps.noSnapshot)
}

type persistenceSteps struct {
	tc TestContext
}

func (s *persistenceSteps) storeIn(ctx context.Context, name string) error {
	s.tc.SetSnapshotFile(name)
	return nil
}

func (s *persistenceSteps) corruptSnapshot(ctx context.Context) error {
	return os.WriteFile(s.tc.SnapshotFile(), []byte("{\"version\": 1, \"contacts\": [{\"name\": \"\"}]}"), 0o600)
}

func (s *persistenceSteps) snapshotShouldContain(ctx context.Context, fragment string) error {
	data, err := os.ReadFile(s.tc.SnapshotFile())
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !strings.Contains(string(data), fragment) {
		return fmt.Errorf("expected snapshot to contain %q, got:\n%s", fragment, data)
	}
	return nil
}

func (s *persistenceSteps) noSnapshot(ctx context.Context) error {
	if _, err := os.Stat(s.tc.SnapshotFile()); !os.IsNotExist(err) {
		return fmt.Errorf("expected no snapshot at %s", s.tc.SnapshotFile())
	}
	return nil
}

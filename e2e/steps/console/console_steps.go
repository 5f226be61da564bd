package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Queue(line string)
	RunSession() error
	Replies() []string
	LastReply() string
	Output() string
	ExitCode() int
}

// RegisterSteps registers session and reply step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &consoleSteps{tc: tc}

	// Session steps
	ctx.Step(`^I enter "([^"]*)"$`, steps.enter)
	ctx.Step(`^I start the assistant$`, steps.startAssistant)
	ctx.Step(`^I run the commands:$`, steps.runCommands)

	// Reply assertions
	ctx.Step(`^the last reply should be "([^"]*)"$`, steps.lastReplyShouldBe)
	ctx.Step(`^the last reply should be:$`, steps.lastReplyShouldBeDoc)
	ctx.Step(`^the last reply should contain "([^"]*)"$`, steps.lastReplyShouldContain)
	ctx.Step(`^the last reply should not mention "([^"]*)"$`, steps.lastReplyShouldNotMention)
	ctx.Step(`^reply (\d+) should be "([^"]*)"$`, steps.replyShouldBe)
	ctx.Step(`^reply (\d+) should contain "([^"]*)"$`, steps.replyShouldContain)
	ctx.Step(`^the output should contain "([^"]*)"$`, steps.outputShouldContain)
	ctx.Step(`^the assistant should exit with code (\d+)$`, steps.exitCodeShouldBe)
}

type consoleSteps struct {
	tc TestContext
}

func (s *consoleSteps) enter(ctx context.Context, line string) error {
	s.tc.Queue(line)
	return nil
}

func (s *consoleSteps) startAssistant(ctx context.Context) error {
	return s.tc.RunSession()
}

func (s *consoleSteps) runCommands(ctx context.Context, doc *godog.DocString) error {
	for _, line := range strings.Split(doc.Content, "\n") {
		s.tc.Queue(line)
	}
	return s.tc.RunSession()
}

func (s *consoleSteps) lastReplyShouldBe(ctx context.Context, expected string) error {
	if got := s.tc.LastReply(); got != expected {
		return fmt.Errorf("expected last reply %q, got %q", expected, got)
	}
	return nil
}

func (s *consoleSteps) lastReplyShouldBeDoc(ctx context.Context, doc *godog.DocString) error {
	return s.lastReplyShouldBe(ctx, doc.Content)
}

func (s *consoleSteps) lastReplyShouldContain(ctx context.Context, fragment string) error {
	if got := s.tc.LastReply(); !strings.Contains(got, fragment) {
		return fmt.Errorf("expected last reply to contain %q, got %q", fragment, got)
	}
	return nil
}

func (s *consoleSteps) lastReplyShouldNotMention(ctx context.Context, fragment string) error {
	if got := s.tc.LastReply(); strings.Contains(got, fragment) {
		return fmt.Errorf("expected last reply not to mention %q, got %q", fragment, got)
	}
	return nil
}

func (s *consoleSteps) reply(n int) (string, error) {
	replies := s.tc.Replies()
	if n < 1 || n > len(replies) {
		return "", fmt.Errorf("reply %d requested but the session produced %d replies", n, len(replies))
	}
	return replies[n-1], nil
}

func (s *consoleSteps) replyShouldContain(ctx context.Context, n int, fragment string) error {
	got, err := s.reply(n)
	if err != nil {
		return err
	}
	if !strings.Contains(got, fragment) {
		return fmt.Errorf("expected reply %d to contain %q, got %q", n, fragment, got)
	}
	return nil
}

func (s *consoleSteps) replyShouldBe(ctx context.Context, n int, expected string) error {
	got, err := s.reply(n)
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected reply %d to be %q, got %q", n, expected, got)
	}
	return nil
}

func (s *consoleSteps) outputShouldContain(ctx context.Context, fragment string) error {
	if !strings.Contains(s.tc.Output(), fragment) {
		return fmt.Errorf("expected output to contain %q, got %q", fragment, s.tc.Output())
	}
	return nil
}

func (s *consoleSteps) exitCodeShouldBe(ctx context.Context, code int) error {
	if got := s.tc.ExitCode(); got != code {
		return fmt.Errorf("expected exit code %d, got %d", code, got)
	}
	return nil
}

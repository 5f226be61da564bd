package e2e

import (
	"github.com/cucumber/godog"

	"contactbook/e2e/steps/birthdays"
	"contactbook/e2e/steps/console"
	"contactbook/e2e/steps/persistence"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Sessions, commands and reply assertions
	console.RegisterSteps(ctx, tc)

	// Birthday steps relative to the real clock
	birthdays.RegisterSteps(ctx, tc)

	// Snapshot file checks
	persistence.RegisterSteps(ctx, tc)
}

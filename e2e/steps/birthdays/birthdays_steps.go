package birthdays

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
)

// birthYear is a leap year so any calendar day is a valid birthday.
const birthYear = 1992

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Queue(line string)
}

// RegisterSteps registers birthday step definitions. Dates are relative to the
// real clock because the assistant reads the system time.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &birthdaySteps{tc: tc}

	ctx.Step(`^"([^"]*)" has a birthday (\d+) days from now$`, steps.birthdayInDays)
	ctx.Step(`^"([^"]*)" has a birthday today$`, steps.birthdayToday)
	ctx.Step(`^I ask for birthdays in the next (\d+) days$`, steps.askForBirthdays)
}

type birthdaySteps struct {
	tc TestContext
}

func birthdayIn(days int) string {
	d := time.Now().AddDate(0, 0, days)
	return fmt.Sprintf("%02d.%02d.%d", d.Day(), int(d.Month()), birthYear)
}

func (s *birthdaySteps) birthdayInDays(ctx context.Context, name string, days int) error {
	s.tc.Queue(fmt.Sprintf("add-birthday %s %s", name, birthdayIn(days)))
	return nil
}

func (s *birthdaySteps) birthdayToday(ctx context.Context, name string) error {
	return s.birthdayInDays(ctx, name, 0)
}

func (s *birthdaySteps) askForBirthdays(ctx context.Context, days int) error {
	s.tc.Queue(fmt.Sprintf("birthdays %d", days))
	return nil
}

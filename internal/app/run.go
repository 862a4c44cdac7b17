package app

import (
	"context"
	"fmt"

	"github.com/vk/agecheck/internal/age"
	"github.com/vk/agecheck/internal/prompt"
)

const (
	// promptText is written verbatim, with no trailing newline.
	promptText = "Input your age: "
	// failureText is the single message for every parse failure.
	failureText = "You absolute failure"
)

// Run executes the single interactive exchange: prompt, read one line,
// parse it as an age and report the classification. Exactly one result
// line is written per run; a parse failure is a designed outcome and
// returns nil. Only an unreadable input stream yields an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	if err := prompt.Ask(a.outW, promptText); err != nil {
		return err
	}
	a.logger.Debug("Prompt written, blocking on input.")

	line, err := prompt.NewReader(a.inR).ReadLine()
	if err != nil {
		return fmt.Errorf("failed to read age from input: %w", err)
	}
	a.logger.Debug("Input line received.", "raw", line)

	parsed, err := age.Parse(line)
	if err != nil {
		a.logger.Debug("Input did not parse as an age.", "error", err)
		fmt.Fprintln(a.outW, failureText)
		return nil
	}

	verdict := age.Classify(parsed)
	a.logger.Debug("Age classified.", "age", parsed, "verdict", verdict.String())
	fmt.Fprintln(a.outW, verdict)

	a.logger.Debug("App.Run method finished.")
	return nil
}

package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrChallengeAborted is returned when the viewer closes the password
// prompt without submitting.
var ErrChallengeAborted = errors.New("challenge cancelled")

// PromptFunc asks the viewer for a secret. lastErr carries the message of
// the previous failed attempt, if any.
type PromptFunc func(itemLabel string, lastErr error) (string, error)

func ChallengeTitle(itemLabel string) string {
	return lockSymbol + " " + itemLabel + " is password protected"
}

// PromptSecret is the interactive PromptFunc backed by a huh password input.
func PromptSecret(itemLabel string, lastErr error) (string, error) {
	var secret string

	description := "Enter the password to reveal this project"
	if lastErr != nil {
		description = "✗ " + lastErr.Error() + ", try again"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(ChallengeTitle(itemLabel)).
				Description(description).
				EchoMode(huh.EchoModePassword).
				Value(&secret),
		),
	).WithTheme(WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrChallengeAborted
		}
		return "", err
	}
	return secret, nil
}

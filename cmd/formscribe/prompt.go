package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptInterrupted reports that the user aborted an interactive prompt.
var ErrPromptInterrupted = errors.New("prompt interrupted")

// promptDriver abstracts the interactive prompts so main stays testable
// without a real terminal.
type promptDriver interface {
	Input(message, def string) (string, error)
	MultiSelect(message string, options []string, defaults []string) ([]string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyDriver struct{}

func (surveyDriver) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", mapPromptErr(err)
	}
	return out, nil
}

func (surveyDriver) MultiSelect(message string, options []string, defaults []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{Message: message, Options: options, Default: defaults}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, mapPromptErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(message string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, mapPromptErr(err)
	}
	return out, nil
}

func mapPromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptInterrupted
	}
	return fmt.Errorf("prompt: %w", err)
}

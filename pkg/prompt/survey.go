// Package prompt asks the user for input.
package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// ValidateFunc returns a message describing why the input is invalid or an
// empty string if it is valid.
type ValidateFunc func(string) string

// Survey prompts on the terminal.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a new Survey. opts are passed to every question.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// Input asks for a value until validate accepts it.
func (s *Survey) Input(message string, validate ValidateFunc) (string, error) {
	opts := s.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(Validator(validate)))
	}

	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", err
	}

	return answer, nil
}

// Confirm asks a yes/no question. The default answer is no.
func (s *Survey) Confirm(message string) (bool, error) {
	answer := false
	if err := survey.AskOne(&survey.Confirm{Message: message}, &answer, s.opts...); err != nil {
		return false, err
	}

	return answer, nil
}

// Validator adapts fn to a survey validator.
func Validator(fn ValidateFunc) survey.Validator {
	return func(ans interface{}) error {
		str, _ := ans.(string)
		if msg := fn(str); msg != "" {
			return errors.New(msg)
		}

		return nil
	}
}

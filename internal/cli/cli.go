package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Utility-Gods/bmichart/internal/app"
	"github.com/Utility-Gods/bmichart/internal/bmi"
	"github.com/Utility-Gods/bmichart/internal/chart"
	"github.com/Utility-Gods/bmichart/pkg/types"
)

const (
	welcomeMessage   = "Welcome to the BMI calculation tool."
	closingMessage   = "Thank you for using the tool. Exiting application."
	invalidSelection = "Invalid selection, please try again."
	invalidHeight    = "Invalid height, please remember to separate the feet from inches with a '"
	invalidNumber    = "Invalid number, please try again."
	zeroHeight       = "Invalid height, the height must be greater than zero."

	unitPrompt           = "Would you like to use measurements in meters/grams, or feet/pounds? (Enter 1 or 2): "
	metricWeightPrompt   = "\nPlease enter your patient's weight (in kilograms): "
	metricHeightPrompt   = "Please enter your patient's height (in centimeters): "
	imperialWeightPrompt = "\nPlease enter your patient's weight (in pounds): "
	imperialHeightPrompt = "Please enter your patient's height in feet (use the format 5'7\" or 5'7) : "
	repeatPrompt         = "Would you like to enter another patient? (y or n): "
)

// Session runs the interactive loop for one operator. The chosen unit
// system is kept for every following patient.
type Session struct {
	prompter types.Prompter
	renderer *chart.Renderer
	out      io.Writer
	logger   *slog.Logger
	strict   bool

	system types.UnitSystem
}

// NewSession creates a session that asks through p and writes to the app's output.
func NewSession(a *app.App, p types.Prompter) *Session {
	return &Session{
		prompter: p,
		renderer: a.Renderer(),
		out:      a.Out(),
		logger:   a.Logger,
		strict:   a.Settings.StrictNumbers,
	}
}

// Run loops until the operator answers n to the repeat question. With strict
// numbers on, the first unparsable measurement ends the session with a
// *bmi.ParseError; otherwise the field is asked again.
func (s *Session) Run() error {
	s.println(welcomeMessage)

	choice, err := s.ask("unit system", unitPrompt)
	if err != nil {
		return err
	}
	s.system = types.UnitSystem(choice)

	for {
		if !s.system.Valid() {
			s.logger.Debug("Rejected unit system.", "input", string(s.system))
			s.println(invalidSelection)
			choice, err := s.ask("unit system", unitPrompt)
			if err != nil {
				return err
			}
			s.system = types.UnitSystem(choice)
			continue
		}

		value, err := s.measure()
		switch {
		case errors.Is(err, bmi.ErrHeightFormat):
			s.println(invalidHeight)
			continue
		case errors.Is(err, bmi.ErrZeroHeight) && !s.strict:
			s.println(zeroHeight)
			continue
		case errors.Is(err, bmi.ErrNotFinite) && !s.strict:
			s.println(invalidNumber)
			continue
		case err != nil:
			return err
		}

		s.logger.Debug("BMI computed.", "system", s.system.String(), "bmi", value, "tier", bmi.Classify(value).String())
		if err := s.renderer.Render(value); err != nil {
			return err
		}

		done, err := s.ask("repeat answer", repeatPrompt)
		if err != nil {
			return err
		}
		if strings.ToLower(done) == "n" {
			break
		}
	}

	s.println(closingMessage)
	return nil
}

func (s *Session) measure() (float64, error) {
	if s.system == types.Metric {
		return s.metric()
	}
	return s.imperial()
}

func (s *Session) metric() (float64, error) {
	weight, err := s.askNumber("weight", metricWeightPrompt)
	if err != nil {
		return 0, err
	}
	heightCm, err := s.askNumber("height", metricHeightPrompt)
	if err != nil {
		return 0, err
	}
	return bmi.Metric(weight, heightCm/100)
}

func (s *Session) imperial() (float64, error) {
	weight, err := s.askNumber("weight", imperialWeightPrompt)
	if err != nil {
		return 0, err
	}
	feet, inches, err := s.askHeight()
	if err != nil {
		return 0, err
	}
	return bmi.Imperial(weight, feet, inches)
}

// askHeight returns bmi.ErrHeightFormat at once so the caller restarts the
// patient; bad numbers inside a well-formed height follow the strict setting.
func (s *Session) askHeight() (feet, inches float64, err error) {
	for {
		text, err := s.ask("height", imperialHeightPrompt)
		if err != nil {
			return 0, 0, err
		}
		h, err := bmi.ParseHeight(text)
		if err != nil {
			return 0, 0, err
		}
		feet, inches, err = h.Values()
		if err == nil {
			return feet, inches, nil
		}
		if s.strict {
			return 0, 0, err
		}
		s.println(invalidNumber)
	}
}

func (s *Session) askNumber(field, label string) (float64, error) {
	for {
		text, err := s.ask(field, label)
		if err != nil {
			return 0, err
		}
		v, err := bmi.ParseNumber(field, text)
		if err == nil {
			return v, nil
		}
		if s.strict {
			return 0, err
		}
		s.println(invalidNumber)
	}
}

func (s *Session) ask(field, label string) (string, error) {
	answer, err := s.prompter.Ask(label)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", field, err)
	}
	return answer, nil
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

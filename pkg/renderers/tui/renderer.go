// Package tui renders a field wrapper in the terminal: a plain-text layout
// for transcripts and an interactive prompt loop that keeps an attached
// aggregator synchronized while the user edits.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/render"
)

// Validator computes the error message for a candidate value. Empty error
// means valid; the message text is what flows to the wrapper and aggregator.
type Validator func(value string) error

// Option configures the renderer.
type Option func(*config)

type config struct {
	driver      PromptDriver
	maxAttempts int
}

// WithDriver injects a custom prompt driver (tests use a scripted fake).
func WithDriver(driver PromptDriver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithMaxAttempts caps the prompt loop. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxAttempts = n
		}
	}
}

// Renderer renders and prompts for a single field.
type Renderer struct {
	driver      PromptDriver
	maxAttempts int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer; the survey-backed driver is the default.
func New(options ...Option) *Renderer {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.driver == nil {
		cfg.driver = newSurveyDriver()
	}
	return &Renderer{driver: cfg.driver, maxAttempts: cfg.maxAttempts}
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces a transcript-style plain text layout of the field.
func (r *Renderer) Render(_ context.Context, props field.Props, options render.Options) ([]byte, error) {
	var b strings.Builder

	if label := strings.TrimSpace(props.Label); label != "" {
		b.WriteString(label)
		if props.Required {
			b.WriteString(" *")
		}
		b.WriteString("\n")
	}

	value := props.Value
	if options.HasValue {
		value = options.Value
	}
	b.WriteString("> ")
	if value != nil {
		b.WriteString(fmt.Sprint(value))
	}
	b.WriteString("\n")

	if props.HasHelp() {
		b.WriteString(strings.TrimSpace(props.HelpText))
		b.WriteString("\n")
	}
	if props.Invalid() {
		b.WriteString("! ")
		b.WriteString(props.ErrorMessage)
		b.WriteString("\n")
	} else if props.ReservesErrorSpace() {
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// Prompt runs the interactive loop for the wrapper's field: ask, forward the
// answer through InputChanged, validate, and feed the outcome back through
// Update so an attached aggregator tracks every transition. The prompt kind
// follows Props.Control: checkbox fields confirm, select fields choose among
// Metadata["options"], everything else is free text. The loop ends on a
// valid answer, an aborted prompt, or an exhausted attempt budget (the field
// then stays registered with its last error message).
func (r *Renderer) Prompt(ctx context.Context, wrapper *field.Wrapper, validate Validator) (string, error) {
	if wrapper == nil {
		return "", fmt.Errorf("tui: wrapper is nil")
	}

	props := wrapper.Props()
	def := defaultAnswer(props)

	for attempt := 0; r.maxAttempts == 0 || attempt < r.maxAttempts; attempt++ {
		answer, err := r.ask(ctx, props, def)
		if err != nil {
			return "", err
		}

		wrapper.InputChanged(answer)

		message := ""
		if validate != nil {
			if vErr := validate(answer); vErr != nil {
				message = vErr.Error()
			}
		}

		next := wrapper.Props()
		next.Value = answer
		next.ErrorMessage = message
		wrapper.Update(next)

		if message == "" {
			wrapper.Blurred()
			return answer, nil
		}
		if err := r.driver.Info(ctx, "✗ "+message); err != nil {
			return "", err
		}
		def = answer
	}

	return "", ErrTooManyAttempts
}

// ask dispatches to the driver prompt matching the field's control. A select
// control without options degrades to free text rather than failing.
func (r *Renderer) ask(ctx context.Context, props field.Props, def string) (string, error) {
	message := promptMessage(props)
	help := strings.TrimSpace(props.HelpText)

	switch strings.ToLower(strings.TrimSpace(props.Control)) {
	case "checkbox":
		out, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: isTruthy(def),
			Help:    help,
		})
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(out), nil
	case "select":
		if options := splitOptions(props.Metadata["options"]); len(options) > 0 {
			index, err := r.driver.Select(ctx, SelectConfig{
				Message:      message,
				Options:      options,
				DefaultIndex: indexOf(options, def),
				Help:         help,
			})
			if err != nil {
				return "", err
			}
			if index < 0 || index >= len(options) {
				return "", fmt.Errorf("tui: select index %d out of range", index)
			}
			return options[index], nil
		}
	}

	return r.driver.Input(ctx, InputConfig{
		Message: message,
		Default: def,
		Help:    help,
	})
}

func promptMessage(props field.Props) string {
	label := strings.TrimSpace(props.Label)
	if label == "" {
		label = props.ID
	}
	if props.Required {
		label += " *"
	}
	return label
}

func defaultAnswer(props field.Props) string {
	if props.Value == nil {
		return ""
	}
	return fmt.Sprint(props.Value)
}

// splitOptions parses the comma-separated Metadata["options"] value shared
// with the HTML select control.
func splitOptions(raw string) []string {
	var options []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			options = append(options, part)
		}
	}
	return options
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}

func isTruthy(value string) bool {
	ok, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && ok
}

package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/form"
	"github.com/goliatone/go-fieldwrap/pkg/render"
	"github.com/goliatone/go-fieldwrap/pkg/renderers/tui"
)

// scriptedDriver replays canned answers per prompt kind and records the
// configs it was handed plus info output.
type scriptedDriver struct {
	answers    []string
	confirms   []bool
	selections []int

	inputs      []tui.InputConfig
	confirmCfgs []tui.ConfirmConfig
	selectCfgs  []tui.SelectConfig

	infos []string
	err   error
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.inputs = append(d.inputs, cfg)
	if len(d.answers) == 0 {
		return "", errors.New("scripted driver exhausted")
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.confirmCfgs = append(d.confirmCfgs, cfg)
	if len(d.confirms) == 0 {
		return false, errors.New("scripted driver exhausted")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.selectCfgs = append(d.selectCfgs, cfg)
	if len(d.selections) == 0 {
		return 0, errors.New("scripted driver exhausted")
	}
	answer := d.selections[0]
	d.selections = d.selections[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestPromptReportsValidationThroughAggregator(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"", "a@b.co"}}
	set := form.NewErrorSet()

	wrapper := field.New(
		field.Props{ID: "email", Label: "Email"},
		field.WithReporter(set),
	)
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver))
	answer, err := renderer.Prompt(context.Background(), wrapper, func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New("required")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if answer != "a@b.co" {
		t.Fatalf("answer = %q", answer)
	}

	// First attempt registered the error, second cleared it.
	if diff := cmp.Diff([]string{"✗ required"}, driver.infos); diff != "" {
		t.Fatalf("info output mismatch (-want +got):\n%s", diff)
	}
	if !set.Valid() {
		t.Fatalf("aggregator still invalid: %v", set.Messages())
	}
	if message, ok := set.Message("email"); !ok || message != "" {
		t.Fatalf("Message(email) = %q, %v; want tracked and empty", message, ok)
	}
	if got := wrapper.Props().Value; got != "a@b.co" {
		t.Fatalf("settled value = %v", got)
	}
}

func TestPromptStopsAfterMaxAttempts(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"", "", ""}}
	set := form.NewErrorSet()

	wrapper := field.New(field.Props{ID: "email"}, field.WithReporter(set))
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver), tui.WithMaxAttempts(3))
	_, err := renderer.Prompt(context.Background(), wrapper, func(string) error {
		return errors.New("required")
	})
	if !errors.Is(err, tui.ErrTooManyAttempts) {
		t.Fatalf("err = %v, want ErrTooManyAttempts", err)
	}

	// The field stays registered with its last message.
	if message, _ := set.Message("email"); message != "required" {
		t.Fatalf("Message(email) = %q, want %q", message, "required")
	}
}

func TestPromptPropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{err: tui.ErrAborted}
	wrapper := field.New(field.Props{ID: "email"})
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver))
	_, err := renderer.Prompt(context.Background(), wrapper, nil)
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}

func TestPromptChecksCheckboxThroughConfirm(t *testing.T) {
	driver := &scriptedDriver{confirms: []bool{true}}
	set := form.NewErrorSet()

	wrapper := field.New(field.Props{
		ID:      "tos",
		Label:   "Accept terms",
		Control: "checkbox",
	}, field.WithReporter(set))
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver))
	answer, err := renderer.Prompt(context.Background(), wrapper, nil)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if answer != "true" {
		t.Fatalf("answer = %q, want %q", answer, "true")
	}
	if len(driver.confirmCfgs) != 1 || len(driver.inputs) != 0 {
		t.Fatalf("confirm calls = %d, input calls = %d; want 1, 0",
			len(driver.confirmCfgs), len(driver.inputs))
	}
	if got := driver.confirmCfgs[0].Message; got != "Accept terms" {
		t.Fatalf("confirm message = %q", got)
	}
	if got := wrapper.Props().Value; got != "true" {
		t.Fatalf("settled value = %v", got)
	}
}

func TestPromptChoosesSelectOptionFromMetadata(t *testing.T) {
	driver := &scriptedDriver{selections: []int{2}}

	wrapper := field.New(field.Props{
		ID:       "plan",
		Label:    "Plan",
		Control:  "select",
		Value:    "pro",
		Metadata: map[string]string{"options": "free, pro, enterprise"},
	})
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver))
	answer, err := renderer.Prompt(context.Background(), wrapper, nil)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if answer != "enterprise" {
		t.Fatalf("answer = %q, want %q", answer, "enterprise")
	}

	if len(driver.selectCfgs) != 1 || len(driver.inputs) != 0 {
		t.Fatalf("select calls = %d, input calls = %d; want 1, 0",
			len(driver.selectCfgs), len(driver.inputs))
	}
	cfg := driver.selectCfgs[0]
	if diff := cmp.Diff([]string{"free", "pro", "enterprise"}, cfg.Options); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
	// Current value preselects its option.
	if cfg.DefaultIndex != 1 {
		t.Fatalf("DefaultIndex = %d, want 1", cfg.DefaultIndex)
	}
}

func TestPromptSelectWithoutOptionsFallsBackToInput(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"custom"}}

	wrapper := field.New(field.Props{ID: "plan", Control: "select"})
	wrapper.Mount()

	renderer := tui.New(tui.WithDriver(driver))
	answer, err := renderer.Prompt(context.Background(), wrapper, nil)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if answer != "custom" {
		t.Fatalf("answer = %q, want %q", answer, "custom")
	}
	if len(driver.inputs) != 1 || len(driver.selectCfgs) != 0 {
		t.Fatalf("input calls = %d, select calls = %d; want 1, 0",
			len(driver.inputs), len(driver.selectCfgs))
	}
}

func TestRenderTranscript(t *testing.T) {
	renderer := tui.New(tui.WithDriver(&scriptedDriver{}))

	out, err := renderer.Render(context.Background(), field.Props{
		ID:           "email",
		Label:        "Email",
		Required:     true,
		Value:        "a@b",
		HelpText:     "work address",
		ErrorMessage: "invalid address",
	}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	transcript := string(out)
	for _, want := range []string{"Email *", "> a@b", "work address", "! invalid address"} {
		if !strings.Contains(transcript, want) {
			t.Fatalf("transcript missing %q:\n%s", want, transcript)
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-appointment-intake/internal/adapter"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/validators"
	"github.com/MKhiriev/go-appointment-intake/models"
)

const usage = `usage: client [flags] <command> [arguments]

commands:
  create [file]        submit an intake form read from file or stdin ("-")
  get <id>             show one appointment
  search <name>        find appointments by patient name
  notes <id> [text]    replace the notes of an appointment, no text clears them
  health               check that the server is up
  version              print the server version`

type App struct {
	intake adapter.IntakeAdapter

	// validator pre-checks forms before create; nil sends them unchecked.
	validator validators.Validator

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

type Option func(*App)

// WithLocalValidation rejects invalid forms before they reach the server.
func WithLocalValidation(v validators.Validator) Option {
	return func(a *App) {
		a.validator = v
	}
}

func NewApp(intake adapter.IntakeAdapter, in io.Reader, out io.Writer, logger *logger.Logger, opts ...Option) *App {
	app := &App{
		intake: intake,
		in:     in,
		out:    out,
		logger: logger,
	}
	for _, opt := range opts {
		opt(app)
	}

	return app
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrMissingArgument, usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case "create":
		return a.create(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "search":
		return a.search(ctx, rest)
	case "notes":
		return a.notes(ctx, rest)
	case "health":
		return a.print(a.intake.Health(ctx))
	case "version":
		version, err := a.intake.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, version)
		return err
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	raw, err := a.readForm(args)
	if err != nil {
		return err
	}

	var form models.AppointmentRequest
	if err = json.Unmarshal(raw, &form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if a.validator != nil {
		if err = a.validator.Validate(ctx, form); err != nil {
			if vErr, ok := validators.AsValidationError(err); ok {
				return fmt.Errorf("%w: %s: %s", ErrRejectedLocally, vErr.Field, vErr.Message)
			}
			return fmt.Errorf("error validating form: %w", err)
		}
	}

	return a.print(a.intake.Create(ctx, raw))
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	return a.print(a.intake.Get(ctx, id))
}

func (a *App) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: search needs a name", ErrMissingArgument)
	}

	return a.print(a.intake.Search(ctx, strings.Join(args, " ")))
}

func (a *App) notes(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	var notes *string
	if len(args) > 1 {
		text := strings.Join(args[1:], " ")
		notes = &text
	}

	return a.print(a.intake.UpdateNotes(ctx, id, notes))
}

// readForm reads the form from the file named in args, or from the input
// stream when no file or "-" is given.
func (a *App) readForm(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("error reading form from input: %w", err)
		}
		return raw, nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading form file: %w", err)
	}
	return raw, nil
}

func (a *App) print(result any, err error) error {
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: appointment id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}
	return id, nil
}

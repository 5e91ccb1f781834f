// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-appointment-intake/internal/adapter"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/mock"
	"github.com/MKhiriev/go-appointment-intake/internal/validators"
	"github.com/MKhiriev/go-appointment-intake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validForm = `{"patient_name":"Jane Doe","patient_email":"jane@example.com","phone_number":"555-123-4567","appointment_date":"2025-01-15","appointment_time":"10:30"}`

func fixedClock() time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T, in string, opts ...Option) (*App, *mock.MockIntakeAdapter, *bytes.Buffer) {
	t.Helper()

	intake := mock.NewMockIntakeAdapter(gomock.NewController(t))
	out := new(bytes.Buffer)

	return NewApp(intake, strings.NewReader(in), out, logger.Nop(), opts...), intake, out
}

func TestApp_Run_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr error
	}{
		{name: "no command", args: nil, expectErr: ErrMissingArgument},
		{name: "unknown command", args: []string{"delete", "1"}, expectErr: ErrUnknownCommand},
		{name: "get without id", args: []string{"get"}, expectErr: ErrMissingArgument},
		{name: "get with text id", args: []string{"get", "abc"}, expectErr: ErrInvalidID},
		{name: "get with zero id", args: []string{"get", "0"}, expectErr: ErrInvalidID},
		{name: "notes without id", args: []string{"notes"}, expectErr: ErrMissingArgument},
		{name: "search without name", args: []string{"search"}, expectErr: ErrMissingArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t, "")

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestApp_Run_CreateFromStdin(t *testing.T) {
	app, intake, out := newTestApp(t, validForm,
		WithLocalValidation(validators.NewIntakeValidator(fixedClock)))

	intake.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form json.RawMessage) (models.CreateAppointmentResponse, error) {
			assert.JSONEq(t, validForm, string(form))
			return models.CreateAppointmentResponse{ID: 1, Appointment: models.Appointment{ID: 1, PatientName: "Jane Doe"}}, nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"create"}))

	var printed models.CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, int64(1), printed.ID)
	assert.Contains(t, out.String(), "\n  \"appointment\"")
}

func TestApp_Run_CreateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(validForm), 0o600))

	app, intake, _ := newTestApp(t, "")
	intake.EXPECT().Create(gomock.Any(), json.RawMessage(validForm)).
		Return(models.CreateAppointmentResponse{ID: 2}, nil)

	assert.NoError(t, app.Run(context.Background(), []string{"create", path}))
}

func TestApp_Run_CreateMissingFile(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"create", filepath.Join(t.TempDir(), "missing.json")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_Run_CreateRejectedLocally(t *testing.T) {
	form := strings.Replace(validForm, "555-123-4567", "155-123-4567", 1)
	app, _, out := newTestApp(t, form, WithLocalValidation(validators.NewIntakeValidator(fixedClock)))

	err := app.Run(context.Background(), []string{"create", "-"})

	require.ErrorIs(t, err, ErrRejectedLocally)
	assert.Contains(t, err.Error(), validators.MsgPhoneInvalidAreaCode)
	assert.Zero(t, out.Len())
}

func TestApp_Run_CreateNotAnObject(t *testing.T) {
	app, _, _ := newTestApp(t, `["not","a","form"]`)

	err := app.Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestApp_Run_CreateValidatorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)

	app, _, _ := newTestApp(t, validForm, WithLocalValidation(v))

	err := app.Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, validators.ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrRejectedLocally)
}

func TestApp_Run_Get(t *testing.T) {
	app, intake, out := newTestApp(t, "")
	intake.EXPECT().Get(gomock.Any(), int64(7)).Return(models.Appointment{ID: 7, PatientName: "Alice Example"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", "7"}))
	assert.Contains(t, out.String(), `"patient_name": "Alice Example"`)
}

func TestApp_Run_GetServerError(t *testing.T) {
	app, intake, _ := newTestApp(t, "")
	notFound := errors.Join(adapter.ErrNotFound, errors.New("Appointment not found"))
	intake.EXPECT().Get(gomock.Any(), int64(9)).Return(models.Appointment{}, notFound)

	err := app.Run(context.Background(), []string{"get", "9"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestApp_Run_SearchJoinsWords(t *testing.T) {
	app, intake, _ := newTestApp(t, "")
	intake.EXPECT().Search(gomock.Any(), "jane doe").Return(models.SearchResponse{Results: []models.Appointment{}}, nil)

	assert.NoError(t, app.Run(context.Background(), []string{"search", "jane", "doe"}))
}

func TestApp_Run_Notes(t *testing.T) {
	text := "needs wheelchair access"

	tests := []struct {
		name  string
		args  []string
		notes *string
	}{
		{name: "set", args: []string{"notes", "3", "needs", "wheelchair", "access"}, notes: &text},
		{name: "clear", args: []string{"notes", "3"}, notes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, intake, _ := newTestApp(t, "")
			intake.EXPECT().UpdateNotes(gomock.Any(), int64(3), tt.notes).
				Return(models.NotesResponse{ID: 3, Notes: tt.notes}, nil)

			assert.NoError(t, app.Run(context.Background(), tt.args))
		})
	}
}

func TestApp_Run_HealthAndVersion(t *testing.T) {
	app, intake, out := newTestApp(t, "")
	intake.EXPECT().Health(gomock.Any()).Return(models.StatusResponse{Service: "appointment-api", Status: "ok"}, nil)
	intake.EXPECT().Version(gomock.Any()).Return("1.4.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"health"}))
	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Contains(t, out.String(), `"status": "ok"`)
	assert.True(t, strings.HasSuffix(out.String(), "1.4.0\n"))
}

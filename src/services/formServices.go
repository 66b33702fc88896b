package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/forms"
	"github.com/FAMH/Collection-Gateway/src/models"
	"go.uber.org/zap"
)

// ErrNoChanges rejects a save whose working values match the opening
// snapshot and carry no new image.
var ErrNoChanges = errors.New("no changes to save")

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	msg := "validation failed:"
	for _, key := range keys {
		msg += fmt.Sprintf(" %s: %s", key, e.Fields[key])
	}
	return msg
}

// FormService opens and submits the entity edit forms. Opening always
// re-reads the record and option lists upstream so the form starts from the
// current state, not the caller's cache.
type FormService struct {
	api *api.Client
	log *zap.Logger
}

func NewFormService(client *api.Client, logger *zap.Logger) *FormService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormService{api: client, log: logger}
}

// ArtworkFormView is an opened artwork form plus its fresh dropdown options.
type ArtworkFormView struct {
	Form        *forms.ArtworkForm        `json:"form"`
	Artists     []models.ArtistRecord     `json:"artists"`
	Departments []models.DepartmentRecord `json:"departments"`
	Mediums     []string                  `json:"mediums"`
	Conditions  []string                  `json:"conditions"`
}

func (s *FormService) OpenArtworkForm(ctx context.Context, id int) (*ArtworkFormView, error) {
	record, err := s.api.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}
	artists, err := s.api.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.api.ListDepartments(ctx, models.DepartmentsAll, false)
	if err != nil {
		return nil, err
	}
	mediums, err := s.api.Mediums(ctx)
	if err != nil {
		return nil, err
	}
	conditions, err := s.api.ArtworkConditions(ctx)
	if err != nil {
		return nil, err
	}
	return &ArtworkFormView{
		Form:        forms.NewArtworkForm(*record),
		Artists:     artists,
		Departments: departments,
		Mediums:     mediums,
		Conditions:  conditions,
	}, nil
}

// SubmitArtworkForm re-snapshots the record, applies the submitted values
// and image, and saves only when the form is dirty and valid.
func (s *FormService) SubmitArtworkForm(ctx context.Context, id int, values forms.ArtworkValues, image *api.ImageAttachment) error {
	record, err := s.api.GetArtwork(ctx, id)
	if err != nil {
		return err
	}
	form := forms.NewArtworkForm(*record)
	form.Values = values
	form.Image = image

	if !form.Dirty() {
		return ErrNoChanges
	}

	mediums, err := s.api.Mediums(ctx)
	if err != nil {
		return err
	}
	conditions, err := s.api.ArtworkConditions(ctx)
	if err != nil {
		return err
	}
	if errs := form.Validate(mediums, conditions); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return s.api.UpdateArtwork(ctx, id, form.Fields(), image)
}

// ArtistFormView is an opened artist form plus its fresh dropdown options.
type ArtistFormView struct {
	Form          *forms.ArtistForm `json:"form"`
	Nationalities []string          `json:"nationalities"`
}

func (s *FormService) OpenArtistForm(ctx context.Context, id int) (*ArtistFormView, error) {
	record, err := s.api.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	nationalities, err := s.api.Nationalities(ctx)
	if err != nil {
		return nil, err
	}
	return &ArtistFormView{
		Form:          forms.NewArtistForm(*record),
		Nationalities: nationalities,
	}, nil
}

func (s *FormService) SubmitArtistForm(ctx context.Context, id int, values forms.ArtistValues, image *api.ImageAttachment) error {
	record, err := s.api.GetArtist(ctx, id)
	if err != nil {
		return err
	}
	form := forms.NewArtistForm(*record)
	form.Values = values
	form.Image = image

	if !form.Dirty() {
		return ErrNoChanges
	}
	if errs := form.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return s.api.UpdateArtist(ctx, id, form.Fields(), image)
}

func (s *FormService) OpenDepartmentForm(ctx context.Context, id int) (*forms.DepartmentForm, error) {
	record, err := s.api.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	return forms.NewDepartmentForm(*record), nil
}

func (s *FormService) SubmitDepartmentForm(ctx context.Context, id int, values forms.DepartmentValues) error {
	record, err := s.api.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	form := forms.NewDepartmentForm(*record)
	form.Values = values

	if !form.Dirty() {
		return ErrNoChanges
	}
	if errs := form.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return s.api.UpdateDepartment(ctx, id, form.Payload())
}

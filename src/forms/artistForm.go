package forms

import (
	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
)

// ArtistValues are the artist form's editable fields.
type ArtistValues struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	BirthYear   string `json:"birthYear"`
	DeathYear   string `json:"deathYear"`
	Description string `json:"description"`
}

// ArtistForm is one open artist edit session.
type ArtistForm struct {
	ArtistID int          `json:"ArtistID"`
	Values   ArtistValues `json:"values"`
	Image    *api.ImageAttachment

	initial ArtistValues
}

func NewArtistForm(record models.ArtistRecord) *ArtistForm {
	values := ArtistValues{
		Name:        record.Name,
		Gender:      record.Gender,
		Nationality: record.Nationality,
		BirthYear:   intString(record.BirthYear),
		DeathYear:   intString(record.DeathYear),
		Description: record.Description,
	}
	return &ArtistForm{ArtistID: record.ArtistID, Values: values, initial: values}
}

func (f *ArtistForm) Dirty() bool {
	return f.Values != f.initial || f.Image != nil
}

// Validate returns field name to message for every violation. Death year is
// optional.
func (f *ArtistForm) Validate() map[string]string {
	v := f.Values
	errs := map[string]string{}
	if v.Name == "" {
		errs["name"] = "Name is required."
	}
	if v.Gender == "" {
		errs["gender"] = "Gender is required."
	}
	if v.Nationality == "" {
		errs["nationality"] = "Nationality is required."
	}
	if v.BirthYear == "" {
		errs["birthYear"] = "Birth year is required."
	}
	if v.Description == "" {
		errs["description"] = "Description is required."
	}
	return errs
}

// Fields builds the multipart field set for the update call.
func (f *ArtistForm) Fields() map[string]string {
	v := f.Values
	return map[string]string{
		"name":        v.Name,
		"gender":      v.Gender,
		"nationality": v.Nationality,
		"birthYear":   v.BirthYear,
		"deathYear":   v.DeathYear,
		"description": v.Description,
	}
}

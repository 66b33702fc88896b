// Package forms holds the edit-form state machines: each form snapshots the
// record it was opened from, tracks the caller's working values, reports
// whether anything actually changed, and validates before producing the
// payload sent upstream.
package forms

import (
	"strconv"
	"strings"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
)

// OptionOther is the dropdown entry that opens the free-text input for a
// value not in the option list.
const OptionOther = "Other"

// ArtworkValues are the artwork form's editable fields, all as the strings
// the inputs carry.
type ArtworkValues struct {
	Title           string `json:"Title"`
	ArtistID        string `json:"artist_id"`
	DepartmentID    string `json:"department_id"`
	CreationYear    string `json:"CreationYear"`
	Medium          string `json:"medium"`
	CustomMedium    string `json:"customMedium"`
	Height          string `json:"height"`
	Width           string `json:"width"`
	Depth           string `json:"depth"`
	AcquisitionDate string `json:"acquisition_date"`
	Condition       string `json:"condition"`
	CustomCondition string `json:"customCondition"`
	Location        string `json:"location"`
	Price           string `json:"price"`
	Description     string `json:"Description"`
}

// ArtworkForm is one open artwork edit session.
type ArtworkForm struct {
	ArtworkID int           `json:"ArtworkID"`
	Values    ArtworkValues `json:"values"`
	Image     *api.ImageAttachment

	initial ArtworkValues
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intString(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

// dateOnly keeps the calendar-date part of an upstream timestamp.
func dateOnly(raw string) string {
	if idx := strings.IndexByte(raw, 'T'); idx >= 0 {
		return raw[:idx]
	}
	return raw
}

// NewArtworkForm prepopulates the form from the record and snapshots the
// result for the dirty check.
func NewArtworkForm(record models.ArtworkRecord) *ArtworkForm {
	values := ArtworkValues{
		Title:           record.Title,
		ArtistID:        strconv.Itoa(record.ArtistID),
		DepartmentID:    strconv.Itoa(record.DepartmentID),
		CreationYear:    intString(record.CreationYear),
		Medium:          record.Medium,
		Height:          floatString(record.Height),
		Width:           floatString(record.Width),
		Depth:           floatString(record.Depth),
		AcquisitionDate: dateOnly(record.AcquisitionDate),
		Condition:       record.Condition,
		Location:        record.Location,
		Price:           floatString(record.Price),
		Description:     record.Description,
	}
	return &ArtworkForm{ArtworkID: record.ArtworkID, Values: values, initial: values}
}

// Dirty reports whether any field differs from the opening snapshot or a
// replacement image was attached. The custom-value inputs do not count on
// their own.
func (f *ArtworkForm) Dirty() bool {
	a, b := f.Values, f.initial
	a.CustomMedium, b.CustomMedium = "", ""
	a.CustomCondition, b.CustomCondition = "", ""
	return a != b || f.Image != nil
}

// Validate returns field name to message for every violation; an empty map
// means the form may be submitted.
func (f *ArtworkForm) Validate(mediums, conditions []string) map[string]string {
	v := f.Values
	errs := map[string]string{}
	if v.Title == "" {
		errs["Title"] = "Title is required."
	}
	if v.ArtistID == "" {
		errs["artistId"] = "Please select an artist."
	}
	if v.DepartmentID == "" {
		errs["departmentId"] = "Please select a department."
	}
	if v.CreationYear == "" {
		errs["CreationYear"] = "Creation year is required."
	}
	if v.Medium == "" {
		errs["medium"] = "Please select a medium."
	}
	if v.Height == "" {
		errs["height"] = "Height is required."
	}
	if v.Width == "" {
		errs["width"] = "Width is required."
	}
	if v.AcquisitionDate == "" {
		errs["acquisitionDate"] = "Acquisition date is required."
	}
	if v.Condition == "" {
		errs["condition"] = "Please select a condition."
	}
	if v.Description == "" {
		errs["description"] = "Description is required."
	}

	if v.Medium == OptionOther {
		if v.CustomMedium == "" {
			errs["customMedium"] = "Please specify the medium."
		} else if containsFold(mediums, v.CustomMedium) {
			errs["customMedium"] = "This medium already exists in the list. Please select it from the dropdown."
		}
	}
	if v.Condition == OptionOther {
		if v.CustomCondition == "" {
			errs["customCondition"] = "Please specify the artwork condition."
		} else if containsFold(conditions, v.CustomCondition) {
			errs["customCondition"] = "This condition already exists in the list. Please select it from the dropdown."
		}
	}
	return errs
}

// Fields builds the multipart field set for the update call, resolving the
// "Other" selections to their typed-in values.
func (f *ArtworkForm) Fields() map[string]string {
	v := f.Values
	medium := v.Medium
	if medium == OptionOther {
		medium = v.CustomMedium
	}
	condition := v.Condition
	if condition == OptionOther {
		condition = v.CustomCondition
	}
	return map[string]string{
		"Title":            v.Title,
		"artist_id":        v.ArtistID,
		"department_id":    v.DepartmentID,
		"CreationYear":     v.CreationYear,
		"Medium":           medium,
		"height":           v.Height,
		"width":            v.Width,
		"depth":            v.Depth,
		"acquisition_date": v.AcquisitionDate,
		"ArtworkCondition": condition,
		"location":         v.Location,
		"price":            v.Price,
		"Description":      v.Description,
	}
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

package forms

import (
	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
)

// DepartmentValues are the department form's editable fields.
type DepartmentValues struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// DepartmentForm is one open department edit session. Departments carry no
// image, so the payload is plain JSON.
type DepartmentForm struct {
	DepartmentID int              `json:"DepartmentID"`
	Values       DepartmentValues `json:"values"`

	initial DepartmentValues
}

func NewDepartmentForm(record models.DepartmentRecord) *DepartmentForm {
	values := DepartmentValues{
		Name:        record.Name,
		Location:    record.Location,
		Description: record.Description,
	}
	return &DepartmentForm{DepartmentID: record.DepartmentID, Values: values, initial: values}
}

func (f *DepartmentForm) Dirty() bool {
	return f.Values != f.initial
}

// Validate returns field name to message for every violation. Location is
// optional.
func (f *DepartmentForm) Validate() map[string]string {
	v := f.Values
	errs := map[string]string{}
	if v.Name == "" {
		errs["name"] = "Department name is required."
	}
	if v.Description == "" {
		errs["description"] = "Description is required."
	}
	return errs
}

// Payload builds the update body for the upstream call.
func (f *DepartmentForm) Payload() api.DepartmentUpdate {
	return api.DepartmentUpdate{
		Name:        f.Values.Name,
		Location:    f.Values.Location,
		Description: f.Values.Description,
	}
}

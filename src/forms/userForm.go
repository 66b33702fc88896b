package forms

import "github.com/FAMH/Collection-Gateway/src/models"

// RoleCustomer is the default role for a newly created account.
const RoleCustomer = 3

// UserValues are the user form's editable fields. Password fields matter
// only when creating; edits never change the password.
type UserValues struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	RoleID          int    `json:"roleId"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UserForm is one open user create or edit session; UserID zero means
// create.
type UserForm struct {
	UserID int        `json:"user_id"`
	Values UserValues `json:"values"`

	initial UserValues
}

// NewUserForm prepopulates from an existing record for editing.
func NewUserForm(record models.UserRecord) *UserForm {
	values := UserValues{
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		DateOfBirth: record.DateOfBirth,
		Username:    record.Username,
		Email:       record.Email,
		RoleID:      record.RoleID,
	}
	if values.RoleID == 0 {
		values.RoleID = RoleCustomer
	}
	return &UserForm{UserID: record.UserID, Values: values, initial: values}
}

// NewBlankUserForm opens an empty create form.
func NewBlankUserForm() *UserForm {
	values := UserValues{RoleID: RoleCustomer}
	return &UserForm{Values: values, initial: values}
}

func (f *UserForm) Creating() bool {
	return f.UserID == 0
}

func (f *UserForm) Dirty() bool {
	return f.Values != f.initial
}

// Validate applies the password rules, which bind only when creating.
func (f *UserForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.Creating() {
		v := f.Values
		if v.Password == "" || v.ConfirmPassword == "" {
			errs["password"] = "Please enter and confirm the password."
		} else if v.Password != v.ConfirmPassword {
			errs["password"] = "Passwords do not match."
		} else if len(v.Password) < 6 {
			errs["password"] = "Password must be at least 6 characters long."
		}
	}
	return errs
}

// Payload builds the upstream body; the password travels only on create.
func (f *UserForm) Payload() models.UserPayload {
	v := f.Values
	payload := models.UserPayload{
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		DateOfBirth: v.DateOfBirth,
		Username:    v.Username,
		Email:       v.Email,
		RoleID:      v.RoleID,
	}
	if f.Creating() {
		payload.Password = v.Password
	}
	return payload
}

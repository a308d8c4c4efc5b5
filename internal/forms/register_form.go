package forms

import "strings"

// RegisterForm carries raw registration input. The two password fields follow
// the usual password/confirmation pair.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required"`
}

// RegisterInput is a validated registration record.
type RegisterInput struct {
	Username string
	Password string
}

// Validate returns the typed input or per-field errors. Password confirmation
// is the one cross-field rule in the system.
func (f *RegisterForm) Validate() (*RegisterInput, Errors) {
	f.Username = strings.TrimSpace(f.Username)

	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		errs = fieldErrors(err)
	}
	if _, ok := errs["password2"]; !ok && f.Password1 != f.Password2 {
		errs["password2"] = "The two password fields do not match."
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &RegisterInput{Username: f.Username, Password: f.Password1}, nil
}

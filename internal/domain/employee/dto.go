package employee

import (
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportRow is one record from a bulk import source. Parsing the source file
// is the caller's concern; only per-row bookkeeping happens here.
type ImportRow struct {
	Name  string
	Email string
}

type ImportRowError struct {
	Row   ImportRow `json:"row"`
	Error string    `json:"error"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

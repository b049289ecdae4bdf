package note

import (
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type CreateNoteRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
	Type       string `json:"note_type"`
	IsPrivate  bool   `json:"is_private"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "note_type",
			Message: "note_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateNoteRequest struct {
	Note      string `json:"note"`
	Type      string `json:"note_type"`
	IsPrivate bool   `json:"is_private"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "note_type",
			Message: "note_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

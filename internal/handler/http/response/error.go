package response

import (
	"errors"
	"net/http"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/auth"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authorization: the resource exists but the actor is out of scope.
	case errors.Is(err, policy.ErrForbidden):
		Forbidden(w, "You do not have access to this resource")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is not active")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrInvalidOrExpiredToken):
		Unauthorized(w, "Invalid or expired reset token")
	case errors.Is(err, auth.ErrIncorrectPassword):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, auth.ErrPasswordResetRequired):
		Forbidden(w, "Password reset required")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, account.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, account.ErrInvalidStatus):
		BadRequest(w, "Invalid status", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already exists")

	// Team domain errors
	case errors.Is(err, team.ErrAlreadyAssigned):
		Conflict(w, "Employee is already assigned to this manager")
	case errors.Is(err, team.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")

	// Note and tag domain errors
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")
	case errors.Is(err, tag.ErrTagNotFound):
		NotFound(w, "Tag not found")

	// Activity domain errors
	case errors.Is(err, activity.ErrEntryNotFound):
		NotFound(w, "Activity log entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type updateEntryRequest struct {
	Action  string `json:"action"`
	Details string `json:"details"`
}

func (req *updateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type entryView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email,omitempty"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

func toEntryView(e activity.Entry) entryView {
	return entryView{
		ID:        e.ID,
		UserID:    e.UserID,
		UserEmail: e.UserEmail,
		Action:    e.Action,
		Details:   e.Details,
		Timestamp: e.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type ActivityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &ActivityHandlerImpl{activityService: activityService}
}

// List implements ActivityHandler.
func (h *ActivityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.activityService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}

	response.Success(w, views)
}

// Update implements ActivityHandler.
func (h *ActivityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.activityService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq.Action, updateReq.Details)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log updated", toEntryView(updated))
}

// Delete implements ActivityHandler.
func (h *ActivityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.activityService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log deleted", nil)
}

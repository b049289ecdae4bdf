package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type TagHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type addTagRequest struct {
	Tag string `json:"tag"`
}

func (req *addTagRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Tag) {
		errs = append(errs, validator.ValidationError{
			Field:   "tag",
			Message: "tag is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type tagView struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Tag        string `json:"tag"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
}

func toTagView(t tag.Tag) tagView {
	return tagView{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Tag:        t.Tag,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type TagHandlerImpl struct {
	tagService tag.TagService
}

func NewTagHandler(tagService tag.TagService) TagHandler {
	return &TagHandlerImpl{tagService: tagService}
}

// Add implements TagHandler.
func (h *TagHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var addReq addTagRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.tagService.Add(r.Context(), actor, chi.URLParam(r, "employeeID"), addReq.Tag)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tag added", toTagView(created))
}

// ListForEmployee implements TagHandler.
func (h *TagHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tags, err := h.tagService.ListForEmployee(r.Context(), actor, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]tagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, toTagView(t))
	}

	response.Success(w, views)
}

// Delete implements TagHandler.
func (h *TagHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.tagService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tag deleted", nil)
}

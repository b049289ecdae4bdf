package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
)

type NoteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Timeline(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Years(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type NoteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &NoteHandlerImpl{noteService: noteService}
}

// noteView is the JSON projection of a note with its joins.
type noteView struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	EmployeeEmail string `json:"employee_email,omitempty"`
	Note          string `json:"note"`
	Type          string `json:"note_type"`
	Year          int    `json:"year"`
	IsPrivate     bool   `json:"is_private"`
	CreatedBy     string `json:"created_by"`
	CreatorEmail  string `json:"creator_email,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func toNoteView(n note.Note) noteView {
	return noteView{
		ID:            n.ID,
		EmployeeID:    n.EmployeeID,
		EmployeeName:  n.EmployeeName,
		EmployeeEmail: n.EmployeeEmail,
		Note:          n.Note,
		Type:          n.Type,
		Year:          n.Year,
		IsPrivate:     n.IsPrivate,
		CreatedBy:     n.CreatedBy,
		CreatorEmail:  n.CreatorEmail,
		CreatedAt:     n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toNoteViews(notes []note.Note) []noteView {
	views := make([]noteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, toNoteView(n))
	}
	return views
}

// Create implements NoteHandler.
func (h *NoteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq note.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.noteService.Create(r.Context(), actor, createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note added", toNoteView(created))
}

// List implements NoteHandler.
func (h *NoteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	notes, err := h.noteService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNoteViews(notes))
}

// Timeline implements NoteHandler.
func (h *NoteHandlerImpl) Timeline(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	notes, err := h.noteService.Timeline(r.Context(), actor, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNoteViews(notes))
}

// Update implements NoteHandler.
func (h *NoteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq note.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.noteService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note updated", toNoteView(updated))
}

// Delete implements NoteHandler.
func (h *NoteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note deleted", nil)
}

// Years implements NoteHandler.
func (h *NoteHandlerImpl) Years(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	years, err := h.noteService.Years(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, years)
}

// Export implements NoteHandler.
func (h *NoteHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	notes, err := h.noteService.Export(r.Context(), actor, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNoteViews(notes))
}

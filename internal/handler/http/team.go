package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type TeamHandler interface {
	Managers(w http.ResponseWriter, r *http.Request)
	TeamOf(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	Unassigned(w http.ResponseWriter, r *http.Request)
}

type assignmentRequest struct {
	ManagerID  string `json:"manager_id"`
	EmployeeID string `json:"employee_id"`
}

func (req *assignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: "manager_id is required",
		})
	}

	if validator.IsEmpty(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService}
}

// Managers implements TeamHandler.
func (h *TeamHandlerImpl) Managers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.teamService.Managers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, managers)
}

// TeamOf implements TeamHandler.
func (h *TeamHandlerImpl) TeamOf(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.TeamOf(r.Context(), chi.URLParam(r, "managerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Assign implements TeamHandler.
func (h *TeamHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var assignReq assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := assignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.teamService.Assign(r.Context(), actor, assignReq.ManagerID, assignReq.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee assigned", nil)
}

// Unassign implements TeamHandler.
func (h *TeamHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var unassignReq assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&unassignReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := unassignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.teamService.Unassign(r.Context(), actor, unassignReq.ManagerID, unassignReq.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee unassigned", nil)
}

// Unassigned implements TeamHandler.
func (h *TeamHandlerImpl) Unassigned(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.Unassigned(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

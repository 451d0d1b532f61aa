package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/handler/http/middleware"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/handler/http/response"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	AdjudicateRequest(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// canAccess lets managers act on anyone and employees only on themselves.
func canAccess(r *http.Request, employeeID string) error {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return response.ErrInvalidToken
	}
	if claims.Role != jwt.RoleManager && claims.EmployeeID != employeeID {
		return response.ErrOwnDataOnly
	}
	return nil
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := canAccess(r, req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", resp)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	resp, err := l.leaveService.GetLeave(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := canAccess(r, resp.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if err := canAccess(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.ListLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AdjudicateRequest implements LeaveHandler. The approver is the bearer of
// the access token; any approver_id in the body is ignored.
func (l *LeaveHandlerImpl) AdjudicateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.AdjudicateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdjudicateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.HandleError(w, response.ErrInvalidToken)
		return
	}

	req.RequestID = chi.URLParam(r, "id")
	req.ApproverID = claims.EmployeeID

	resp, err := l.leaveService.AdjudicateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	req := leave.GetBalanceRequest{
		EmployeeID: chi.URLParam(r, "id"),
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", map[string]string{"year": "year must be a number"})
			return
		}
		req.Year = &year
	}

	if err := canAccess(r, req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.GetBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

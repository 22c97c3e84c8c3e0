package handler

import (
	"account_admin_backend/internal/accounts/service"
	"account_admin_backend/internal/accounts/transport"
	"account_admin_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles callable invocations for account administration.
type Handler struct {
	svc *service.Service
}

// New creates a new accounts handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// DeleteUser deletes an account by uid.
// POST /api/v1/callable/deleteUser
//
// Every outcome of a well-formed invocation is a 200 with
// {"result": {"success": ..., "message": ...}}.
func (h *Handler) DeleteUser(c *gin.Context) {
	var req transport.DeleteUserRequest
	if err := httpkit.BindCallable(c, &req); err != nil {
		httpkit.CallableFail(c, err)
		return
	}

	res := h.svc.DeleteUser(c.Request.Context(), req)
	httpkit.CallableResult(c, toResponse(res))
}

func toResponse(res service.Result) transport.DeleteUserResponse {
	return transport.DeleteUserResponse{
		Success: res.OK(),
		Message: res.Message(),
	}
}

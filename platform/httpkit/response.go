// Package httpkit provides HTTP response utilities, including the callable
// envelope used by remote-procedure style endpoints.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"account_admin_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

const (
	msgBadRequest  = "Bad Request"
	opBindCallable = "BindCallable"
)

var errUnsupportedContentType = errors.New("content type must be application/json")

// CallableRequest is the request envelope: {"data": <payload>}.
type CallableRequest struct {
	Data json.RawMessage `json:"data"`
}

// CallableResponse is the success envelope: {"result": <payload>}.
type CallableResponse struct {
	Result interface{} `json:"result"`
}

// CallableError describes a boundary-level failure.
type CallableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CallableErrorResponse is the failure envelope: {"error": {...}}.
type CallableErrorResponse struct {
	Error CallableError `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// BindCallable decodes the callable envelope and its data member into dst.
// A missing, null or non-object data member leaves dst at its zero value.
// Only a body that is not a JSON object sent as application/json, or an
// object that dst refuses to decode, is a KindBadRequest error.
func BindCallable(c *gin.Context, dst interface{}) error {
	if c.ContentType() != gin.MIMEJSON {
		return apperr.Wrap(apperr.KindBadRequest, msgBadRequest, errUnsupportedContentType).WithOp(opBindCallable)
	}

	var envelope CallableRequest
	if err := c.ShouldBindJSON(&envelope); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, msgBadRequest, err).WithOp(opBindCallable)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, msgBadRequest, err).WithOp(opBindCallable)
	}
	return nil
}

// CallableResult sends a 200 OK response wrapping payload as {"result": payload}.
func CallableResult(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, CallableResponse{Result: payload})
}

// CallableFail maps an error to a callable error envelope and aborts the chain.
// Typed *apperr.Error values choose the status; anything else is INTERNAL.
func CallableFail(c *gin.Context, err error) {
	_ = c.Error(err)

	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) {
		domainErr = apperr.Internal("INTERNAL")
	}

	c.AbortWithStatusJSON(domainErr.HTTPStatus(), CallableErrorResponse{
		Error: CallableError{Status: callableStatus(domainErr.Kind), Message: domainErr.Message},
	})
}

func callableStatus(kind apperr.Kind) string {
	switch kind {
	case apperr.KindBadRequest, apperr.KindValidation:
		return "INVALID_ARGUMENT"
	case apperr.KindNotFound:
		return "NOT_FOUND"
	case apperr.KindUnauthorized:
		return "UNAUTHENTICATED"
	case apperr.KindForbidden:
		return "PERMISSION_DENIED"
	case apperr.KindUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

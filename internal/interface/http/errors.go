package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/voteboard/voteboard/internal/application"
	"github.com/voteboard/voteboard/pkg/response"
)

// failFromService maps service errors onto HTTP statuses. Anything unmapped
// is a store failure: logged with context, surfaced as a generic 500.
func failFromService(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusForbidden, "invalid credentials", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, "email already in use", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrPostNotFound):
		response.Fail(c, http.StatusNotFound, "post not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Fail(c, http.StatusForbidden, "not authorized to perform requested action", nil)
	case errors.Is(err, application.ErrAlreadyVoted):
		response.Fail(c, http.StatusConflict, "already voted on post", nil)
	case errors.Is(err, application.ErrVoteNotFound):
		response.Fail(c, http.StatusNotFound, "vote not found", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			}).Error("request failed")
		}
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

package server

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/model3"
	"github.com/Faultbox/live2d-viewer/internal/session"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
)

// ErrBadRequest marks malformed request parameters.
var ErrBadRequest = errors.New("bad request")

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, character.ErrUnknownCharacter),
		errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, motion.ErrGroupNotFound),
		errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, motion.ErrIndexOutOfRange),
		errors.Is(err, motion.ErrEmptyCatalog),
		errors.Is(err, motion.ErrEmptyGroup):
		return http.StatusUnprocessableEntity
	case errors.Is(err, motion.ErrModelNotReady):
		return http.StatusConflict
	case errors.Is(err, session.ErrTooManySessions):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, session.ErrNotMeasurable),
		errors.Is(err, session.ErrInvalidColor),
		errors.Is(err, session.ErrInvalidScale),
		errors.Is(err, model3.ErrInvalidJSON):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// abort writes {"error": ...} with the mapped status.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

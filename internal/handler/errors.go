package handler

import (
	"errors"
	"net/http"

	"hissaback/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps core errors onto HTTP statuses: NotFound -> 404,
// InvalidInput -> 400, DuplicateOrder/Conflict -> 409, rest -> 500.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateOrder) || errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

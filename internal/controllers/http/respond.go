package http

import (
	"errors"
	"net/http"

	"harvestmarket/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response envelope: {status, message, data} with "fail" + field detail for
// validation failures.

func success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, "data": data})
}

func created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": message, "data": data})
}

func fail(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		stockErr      *domain.InsufficientStockError
		conflictErr   *domain.ConflictError
		stateErr      *domain.InvalidStateError
		signatureErr  *domain.SignatureError
		gatewayErr    *domain.GatewayError
		configErr     *domain.ConfigurationError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": "fail",
			"errors": []gin.H{{"field": validationErr.Field, "message": validationErr.Message}},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &stockErr), errors.As(err, &conflictErr), errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &signatureErr):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &gatewayErr):
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": err.Error()})
	case errors.As(err, &configErr):
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
}

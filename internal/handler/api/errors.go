package api

import (
	"context"
	"net/http"

	"campus-canteen/internal/domain/order"
	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/handler/httperr"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoStaffSession = errs.New("no staff session in context")

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins.
var errorMappings = []errorMapping{
	{errs.ErrCanteenNotFound, http.StatusNotFound, "Canteen not found"},
	{errs.ErrFoodItemNotFound, http.StatusNotFound, "Food item not found"},
	{errs.ErrSlotNotFound, http.StatusNotFound, "Pickup slot not found"},
	{errs.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{errs.ErrOrderNotOwned, http.StatusForbidden, "Order belongs to another canteen"},
	{order.ErrInsufficientFunds, http.StatusUnprocessableEntity, "Insufficient wallet balance"},
	{order.ErrInsufficientStock, http.StatusConflict, "Insufficient stock to accept order"},
	{order.ErrSlotFull, http.StatusConflict, "Pickup slot is full"},
	{order.ErrInvalidTransition, http.StatusConflict, "Status change not allowed"},
	{order.ErrInvalidStatus, http.StatusBadRequest, "Unknown order status"},
	{commands.ErrInvalidTopUpAmount, http.StatusBadRequest, "Invalid top-up amount"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid staff ID or password"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
	{context.DeadlineExceeded, http.StatusRequestTimeout, "Request timed out"},
	{context.Canceled, http.StatusRequestTimeout, "Request cancelled"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func abortWithMappingError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "response mapping"), "Internal server error", nil)
}

// respond maps view onto T and writes it with status.
func respond[T any](c *gin.Context, status int, view any) {
	out, err := resdto.From[T](view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(status, out)
}

func respondEach[T any, V any](c *gin.Context, status int, views []V) {
	out, err := resdto.FromEach[T](views)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(status, out)
}

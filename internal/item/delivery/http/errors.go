package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trade-custody/internal/item"
	pkgErrors "trade-custody/pkg/errors"
	"trade-custody/pkg/response"
)

var errInvalidItemID = pkgErrors.NewHTTPError(http.StatusBadRequest, "item id must be a positive integer")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not recognised is an infrastructure failure and becomes a 500.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, item.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, item.ErrInvalidRequest):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// renderError writes the standard error envelope for the read endpoints.
// Unrecognised errors get a generic 500 so store details never reach the caller.
func (h *handler) renderError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	if errors.Is(mapped, pkgErrors.ErrInternalServerError) {
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}

package caseview

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/case-view", h.GetCaseView)
}

// GetCaseView binds the query parameters and writes the Result envelope.
// The envelope's status doubles as the HTTP status on failure.
func (h *Handler) GetCaseView(c echo.Context) error {
	q := Query{
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
		Limit: c.QueryParam("limit"),
	}

	result := h.svc.FetchCaseView(c.Request().Context(), q)

	status := http.StatusOK
	if !result.Success {
		status = result.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
	}
	return c.JSON(status, result)
}

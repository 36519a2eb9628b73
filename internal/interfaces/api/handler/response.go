package handler

import (
	"net/http"

	"georeminder/internal/application/dto"

	"github.com/labstack/echo/v4"
)

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, dto.ErrorResponse{Message: message})
}

func badRequest(c echo.Context, message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{Message: message})
}

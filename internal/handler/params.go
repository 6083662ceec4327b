package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}

// pageParam reads ?page=, falling back to 1 for missing or malformed values.
func pageParam(c echo.Context) int {
	page := parseIntDefault(strings.TrimSpace(c.QueryParam("page")), 1)
	if page < 1 {
		return 1
	}
	return page
}

var errInvalidID = errors.New("invalid id")

// idParam parses the :id path parameter as a positive integer.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

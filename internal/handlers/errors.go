package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/anonto42/fb-post/backend/internal/middleware"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// serviceHTTPError maps a service error onto an HTTP error
func serviceHTTPError(err error) error {
	switch services.GetErrorCode(err) {
	case services.CodeInvalidUser, services.CodeInvalidPost, services.CodeInvalidComment:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case services.CodeInvalidPostContent, services.CodeInvalidCommentContent, services.CodeInvalidReaction:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case services.CodeUserCannotDeletePost:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// idList parses a comma separated list such as "1, 2,3". Blank entries are skipped.
func idList(raw string) ([]uint, error) {
	ids := []uint{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid id "+strconv.Quote(part))
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func currentUserID(c echo.Context) (uint, error) {
	userID, ok := c.Get(middleware.UserIDKey).(uint)
	if !ok || userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Missing user")
	}
	return userID, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

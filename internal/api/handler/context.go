package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSubject extracts the subject id injected by the Auth middleware. An
// empty subject means the middleware did not run or the token carried none;
// either way the request is unauthenticated.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get("subject").(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"dashboard/internal/http/middleware"
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// renderError renders the error view for the given status without leaking
// internal details. Falls back to a plain text body when no view engine is
// configured (tests).
func renderError(c *fiber.Ctx, status int) error {
	bind := fiber.Map{
		"Title":     "Error",
		"RequestID": requestIDFromCtx(c),
		"Status":    status,
	}

	name := "errors/500"
	if status == fiber.StatusNotFound {
		name = "errors/404"
	}

	c.Status(status)
	if c.App().Config().Views == nil {
		return c.SendString(fiber.ErrInternalServerError.Message)
	}
	return c.Render(name, bind, "layouts/main")
}

// ErrorHandler returns a Fiber global error handler that renders the shared
// error pages. Only unexpected errors reach it; expected failures are turned
// into form re-renders by the handlers themselves.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		return renderError(c, status)
	}
}

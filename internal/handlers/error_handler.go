package handlers

import (
	"bytes"
	"errors"
	"strings"

	"movie-grid/internal/utils"
	"movie-grid/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewErrorHandler logs every failed request and answers with the JSON
// envelope under /api and the generic HTML error page everywhere else.
func NewErrorHandler(renderer *view.Renderer, log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": utils.RequestID(c),
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return utils.ErrorResponse(c, code, message)
		}

		var buf bytes.Buffer
		if renderErr := renderer.RenderError(&buf, code, message); renderErr != nil {
			log.WithError(renderErr).Error("Failed to render error page")
			return c.Status(code).SendString(message)
		}
		c.Type("html", "utf-8")
		return c.Status(code).Send(buf.Bytes())
	}
}

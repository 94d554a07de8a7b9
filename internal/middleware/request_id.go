package middleware

import (
	"movie-grid/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDHeader = fiber.HeaderXRequestID

// RequestID reuses an inbound X-Request-ID or assigns a UUID, stores it in the
// request locals under utils.RequestIDKey and echoes it on the response.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header: RequestIDHeader,
		Generator: func() string {
			return uuid.New().String()
		},
		ContextKey: utils.RequestIDKey,
	})
}

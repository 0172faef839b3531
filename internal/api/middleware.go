package api

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/perktrack/internal/domain/benefits"
	"github.com/cardwise/perktrack/internal/logger"
)

const (
	userIDHeader = "X-User-ID"
	userIDKey    = "user_id"
	maxUserIDLen = 128
)

// IdentityRequired trusts the user id forwarded by the gateway.
func IdentityRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(userIDHeader))
		if userID == "" || len(userID) > maxUserIDLen {
			return SendUnauthorized(c, "missing or invalid "+userIDHeader+" header")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// RequestObserver records request latency, typically into a histogram.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, took time.Duration)
}

// LoggingMiddleware logs every request and reports its latency to obs when
// one is given.
func LoggingMiddleware(obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// render the error now so the logged status is the one sent
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		took := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		attrs := []any{
			slog.String("route", route),
			slog.String("ip", c.IP()),
			slog.Int("size", len(c.Response().Body())),
		}
		if id := currentUser(c); id != "" {
			attrs = append(attrs, slog.String("user_id", id))
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			attrs = append(attrs, slog.String("request_id", rid))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		logger.LogRequest(c.Method(), c.Path(), status, took, attrs...)

		if obs != nil {
			obs.ObserveRequest(c.Method(), route, status, took)
		}
		return nil
	}
}

// ErrorHandler maps domain errors onto the JSON error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validation *benefits.ValidationError
		notFound   *benefits.NotFoundError
		conflict   *benefits.ConflictError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &validation):
		var details map[string]string
		if validation.Field != "" {
			details = map[string]string{validation.Field: validation.Reason}
		}
		return SendBadRequest(c, validation.Error(), details)
	case errors.As(err, &notFound):
		return SendNotFound(c, notFound.Error())
	case errors.As(err, &conflict):
		return SendConflict(c, conflict.Error())
	case errors.As(err, &fiberErr):
		return SendError(c, fiberErr.Code, statusCode(fiberErr.Code), fiberErr.Message, nil)
	}

	logger.LogError("Unhandled request error", err,
		slog.String("method", c.Method()),
		slog.String("path", c.Path()))
	return SendInternalServerError(c, "internal server error")
}

func statusCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "VALIDATION_ERROR"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestTimeout:
		return "TIMEOUT"
	case fiber.StatusConflict:
		return "CONFLICT"
	}
	if status >= 500 {
		return "INTERNAL_SERVER_ERROR"
	}
	return "ERROR"
}

// SecurityHeaders sets the static response headers every API reply carries.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "no-referrer")
		c.Set("Cache-Control", "no-store")
		return c.Next()
	}
}

// RequestTimeout bounds the user context handed to the service layer.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

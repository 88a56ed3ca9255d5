package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/tripboard/tripboard/src/schedule"
)

// GetCarrier serves extended carrier details by the code resolved during
// normalization, with a read-through redis cache.
func (s *APIServer) GetCarrier(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "carrier code is required",
		})
	}

	cached, err := s.Data.GetCachedCarrier(c.Context(), code)
	if err != nil {
		s.Logger.Warnw("carrier cache lookup failed", "code", code, "error", err)
	}
	if cached != nil {
		return c.JSON(cached)
	}

	details, err := s.Schedule.FetchCarrier(c.Context(), code)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
				Error: "Carrier not found",
			})
		}
		return s.scheduleError(c, err)
	}

	s.Data.StoreCarrier(c.Context(), code, details)

	return c.JSON(details)
}

package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) GetStations(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "query parameter is required",
		})
	}

	stations, err := s.Data.SearchStations(c.Context(), query)
	if err != nil {
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Database error",
			Message: "Failed to search stations",
			Stack:   &errStr,
		})
	}

	if len(stations) == 0 {
		return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
			Error: "No stations found",
		})
	}

	return c.JSON(StationsResponse{
		Query:    query,
		Stations: stations,
	})
}

func (s *APIServer) GetStation(c *fiber.Ctx) error {
	code := c.Params("code")

	station, err := s.Data.GetStationByCode(c.Context(), code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
				Error: "Station not found",
			})
		}
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Database error",
			Message: "Failed to look up station",
			Stack:   &errStr,
		})
	}

	return c.JSON(station)
}

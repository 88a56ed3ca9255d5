package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tripboard/tripboard/src/carriers"
	"github.com/tripboard/tripboard/src/common/types"
	"github.com/tripboard/tripboard/src/schedule"
)

// GetSearch runs the full pipeline for one origin/destination query:
// fetch, transport-type narrowing, dedupe, normalize, filter.
func (s *APIServer) GetSearch(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "from and to query parameters are required",
		})
	}
	if from == to {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "origin and destination must differ",
		})
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
		})
	}

	segments, err := s.Schedule.SearchSchedule(c.Context(), schedule.SearchRequest{
		From:           from,
		To:             to,
		Date:           date,
		TransportTypes: carriers.DefaultTransportTypes,
		Limit:          100,
	})
	if err != nil && !errors.Is(err, schedule.ErrNotFound) {
		return s.scheduleError(c, err)
	}

	segments = carriers.KeepTransportTypes(segments, carriers.DefaultTransportTypes)
	visible := carriers.ApplyFilter(carriers.NormalizeAll(carriers.Dedupe(segments)), filter)

	return c.JSON(SearchResponse{
		From:     from,
		To:       to,
		Date:     date,
		Total:    len(visible),
		Carriers: visible,
	})
}

func parseFilter(c *fiber.Ctx) (types.CarrierFilter, error) {
	var filter types.CarrierFilter

	if raw := c.Query("time_options"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			option, err := types.ParseTimeOption(strings.TrimSpace(name))
			if err != nil {
				return types.CarrierFilter{}, err
			}
			filter.TimeOptions = append(filter.TimeOptions, option)
		}
	}

	switch c.Query("transfers") {
	case "":
	case "true":
		v := true
		filter.ShowTransfers = &v
	case "false":
		v := false
		filter.ShowTransfers = &v
	default:
		return types.CarrierFilter{}, errors.New("transfers must be true or false")
	}

	return filter, nil
}

// scheduleError maps the client's error taxonomy onto HTTP responses:
// connectivity-class failures and everything else, per the two user-visible
// error classes.
func (s *APIServer) scheduleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, schedule.ErrBadRequest) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "the upstream rejected the request",
		})
	}

	errStr := err.Error()
	if schedule.IsConnectivity(err) {
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "No internet",
			Message: "the schedule service is unreachable",
			Stack:   &errStr,
		})
	}

	return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
		Error:   "Server error",
		Message: "the schedule service failed to answer",
		Stack:   &errStr,
	})
}

package data

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/tripboard/tripboard/src/common/types"
)

// GetStationByCode looks up one catalog entry by its upstream code.
func (dc *DataClient) GetStationByCode(ctx context.Context, code string) (types.Station, error) {
	var station types.Station
	var transportType, stationType, settlement, region sql.NullString

	err := dc.pg.QueryRow(ctx, `
		SELECT code, title, transport_type, station_type, settlement, region
		FROM station
		WHERE code = $1
	`, code).Scan(&station.Code, &station.Title, &transportType, &stationType, &settlement, &region)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Station{}, sql.ErrNoRows
		}
		return types.Station{}, err
	}

	station.TransportType = transportType.String
	station.StationType = stationType.String
	station.Settlement = settlement.String
	station.Region = region.String

	return station, nil
}

// SearchStations finds catalog entries whose title or settlement contains the
// query, case-insensitively. Results come back closest-length match first; a
// query for "Тверь" should rank the city station above long-named platforms.
func (dc *DataClient) SearchStations(ctx context.Context, query string) ([]types.Station, error) {
	rows, err := dc.pg.Query(ctx, `
		SELECT code, title, transport_type, station_type, settlement, region
		FROM station
		WHERE title ILIKE $1 OR settlement ILIKE $1
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []types.Station

	for rows.Next() {
		var station types.Station
		var transportType, stationType, settlement, region sql.NullString

		if err := rows.Scan(&station.Code, &station.Title, &transportType, &stationType, &settlement, &region); err != nil {
			return nil, err
		}

		station.TransportType = transportType.String
		station.StationType = stationType.String
		station.Settlement = settlement.String
		station.Region = region.String
		stations = append(stations, station)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(stations, func(i, j int) bool {
		return lengthDiff(stations[i].Title, query) < lengthDiff(stations[j].Title, query)
	})

	return stations, nil
}

func lengthDiff(title, query string) int {
	diff := len(title) - len(query)
	if diff < 0 {
		return -diff
	}
	return diff
}

package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tripboard/tripboard/src/common/types"
	"github.com/tripboard/tripboard/src/common/utils"
	"github.com/tripboard/tripboard/src/schedule"
)

// UpdateStations replaces the station catalog with a fresh download. The
// upstream list is nested by country, region, settlement, and station; only
// entries with a code are usable as search endpoints.
func UpdateStations(ctx context.Context, pg *pgxpool.Pool, client *schedule.Client) error {
	catalog, err := client.FetchStationList(ctx)
	if err != nil {
		return err
	}

	tx, err := pg.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, "TRUNCATE TABLE station"); err != nil {
		return err
	}

	for _, country := range catalog.Countries {
		for _, region := range country.Regions {
			for _, settlement := range region.Settlements {
				for _, entry := range settlement.Stations {
					if entry.Codes.Code == "" {
						continue
					}
					station := types.Station{
						Code:          entry.Codes.Code,
						Title:         entry.Title,
						TransportType: entry.TransportType,
						StationType:   entry.StationType,
						Settlement:    settlement.Title,
						Region:        region.Title,
					}
					_, err := tx.Exec(ctx, `
						INSERT INTO station (code, title, transport_type, station_type, settlement, region)
						VALUES ($1, $2, $3, $4, $5, $6)
					`, station.Code, station.Title, station.TransportType, station.StationType, station.Settlement, station.Region)
					if err != nil {
						return err
					}
				}
			}
		}
	}

	tx.Exec(ctx, "UPDATE catalog_fetch SET last_fetched = NOW() WHERE key = 'stations'")

	return tx.Commit(ctx)
}

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()
	log := utils.GetLogger()

	pg, err := utils.NewPostgresConnection()
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	client := schedule.NewClientFromEnv(log)

	for {
		ctx := context.Background()

		rows, err := pg.Query(ctx, "SELECT key FROM catalog_fetch WHERE last_fetched + max_age < NOW()")
		if err != nil {
			log.Fatalw("failed to query catalog freshness", "error", err)
		}

		var key string
		for rows.Next() {
			if err := rows.Scan(&key); err != nil {
				log.Fatalw("failed to scan catalog key", "error", err)
			}

			switch key {
			case "stations":
				log.Infow("updating station catalog")
				if err := UpdateStations(ctx, pg, client); err != nil {
					log.Errorw("station catalog update failed", "error", err)
				} else {
					log.Infow("station catalog updated")
				}
			default:
				log.Warnw("unknown catalog key", "key", key)
			}
		}

		rows.Close()

		time.Sleep(1 * time.Hour)
	}
}

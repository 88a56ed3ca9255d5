package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tripboard/tripboard/src/common/data"
	"github.com/tripboard/tripboard/src/common/utils"
	"github.com/tripboard/tripboard/src/schedule"
	"go.uber.org/zap"
)

type APIServer struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.SugaredLogger
	Data     *data.DataClient
	Schedule *schedule.Client
}

func NewServer() (*APIServer, error) {
	db, err := utils.NewPostgresConnection()
	logger := utils.GetLogger()
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	redis := utils.NewRedisClient()

	return &APIServer{
		DB:       db,
		Redis:    redis,
		Logger:   logger,
		Data:     data.NewDataClient(db, redis, logger),
		Schedule: schedule.NewClientFromEnv(logger),
	}, nil
}

func RegisterHandlers(app *fiber.App, server *APIServer) {
	app.Get("/health", server.GetHealth)
	app.Get("/search", server.GetSearch)
	app.Get("/stations", server.GetStations)
	app.Get("/stations/:code", server.GetStation)
	app.Get("/carriers/:code", server.GetCarrier)
}

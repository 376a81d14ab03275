package main

import (
	"context"
	"net/http"

	_ "listing-distance-api/docs"
	"listing-distance-api/internal/config"
	"listing-distance-api/internal/handler"
	"listing-distance-api/internal/logging"
	"listing-distance-api/internal/metrics"
	"listing-distance-api/internal/repository"
	"listing-distance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Listing Distance API
//	@version	1.0
//	@BasePath	/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogFormat)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	if err := repository.EnsureSchema(context.Background(), conn); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare schema")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)
	distanceService := service.NewDistanceService(repo, config.ValidateCoordinates)
	distanceHandler := handler.NewDistanceHandler(distanceService, config.NearbyLimit)

	r := newRouter(distanceHandler)

	log.Info().Str("addr", config.ServerAddress).Bool("validate_coordinates", config.ValidateCoordinates).Msg("starting listing distance api")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(h *handler.DistanceHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/distance", h.Distance)
	r.GET("/listings/nearby", h.NearbyListings)
	r.GET("/listings/:id/distance", h.ListingDistance)

	return r
}

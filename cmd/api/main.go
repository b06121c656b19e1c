package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"studiorent/internal/config"
	"studiorent/internal/database"
	"studiorent/internal/metrics"
	"studiorent/internal/middleware"
	"studiorent/internal/modules/auth"
	"studiorent/internal/modules/booking"
	"studiorent/internal/modules/catalog"
	"studiorent/internal/modules/favorite"
	"studiorent/internal/modules/review"
	"studiorent/internal/modules/scraping"
	jwtsvc "studiorent/internal/pkg/jwt"
	"studiorent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("config")
	}

	log := newLogger(cfg)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migrate")
	}

	metrics.Register()

	userRepo := repository.NewUserRepository(db)
	studioRepo := repository.NewStudioRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, studioRepo, log.With().Str("module", "booking").Logger())
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(studioRepo, bookingService)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteHandler := favorite.NewHandler(favoriteRepo, studioRepo)

	reviewService := review.NewService(reviewRepo, studioRepo)
	reviewHandler := review.NewHandler(reviewService)

	scrapingService := scraping.NewService(cfg.ScrapingWebhookURL, cfg.ScrapingTimeout,
		log.With().Str("module", "scraping").Logger())
	scrapingHandler := scraping.NewHandler(scrapingService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// public
		catalogHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		// auth endpoints get a per-IP limiter on top
		limiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)
		limited := api.Group("")
		limited.Use(limiter.Middleware())
		authHandler.RegisterPublicRoutes(limited)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			scrapingHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		level = parsed
	}

	var out = os.Stdout
	w := zerolog.New(out)
	if strings.EqualFold(cfg.LogFormat, "console") {
		w = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	return w.Level(level).With().Timestamp().Str("app", "studiorent").Logger()
}

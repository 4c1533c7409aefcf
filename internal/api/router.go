package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spotterhq/spotter-api/internal/api/handler"
	"github.com/spotterhq/spotter-api/internal/api/middleware"
	"github.com/spotterhq/spotter-api/internal/core/service"
	"github.com/spotterhq/spotter-api/internal/core/validation"
	"github.com/spotterhq/spotter-api/internal/infrastructure/ai"
	"github.com/spotterhq/spotter-api/internal/infrastructure/config"
	mongodb "github.com/spotterhq/spotter-api/internal/infrastructure/db/mongo"
	redisdb "github.com/spotterhq/spotter-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	workoutRepo := mongodb.NewWorkoutRepository(db)
	challengeRepo := mongodb.NewChallengeRepository(db)
	invitationRepo := mongodb.NewInvitationRepository(db)
	friendRepo := mongodb.NewFriendRepository(db)
	socialRepo := mongodb.NewSocialRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.AllowedEmailDomain, cfg.SessionTTL, log)
	workoutService := service.NewWorkoutService(workoutRepo, log)
	challengeService := service.NewChallengeService(challengeRepo, invitationRepo, validation.DefaultChallengeRules(), log)
	invitationService := service.NewInvitationService(invitationRepo, challengeRepo, log)
	friendService := service.NewFriendService(userRepo, friendRepo, log)
	socialService := service.NewSocialService(socialRepo, log)
	feedService := service.NewFeedService(challengeRepo, workoutRepo)

	generator := ai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	suggestionCache := redisdb.NewSuggestionCache(rdb)
	suggestionService := service.NewSuggestionService(generator, suggestionCache, log)
	exerciseCache := redisdb.NewExerciseCache(rdb)
	exerciseService := service.NewExerciseService(generator, exerciseCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	challengeHandler := handler.NewChallengeHandler(challengeService, invitationService)
	friendHandler := handler.NewFriendHandler(friendService)
	feedHandler := handler.NewFeedHandler(feedService)
	socialHandler := handler.NewSocialHandler(socialService)
	suggestionHandler := handler.NewSuggestionHandler(suggestionService, exerciseService)

	authRequired := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)

	// --- Authenticated routes ---
	authed := e.Group("/api", authRequired)
	authed.GET("/verify", authHandler.Verify)
	authed.GET("/profile", authHandler.GetProfile)
	authed.PUT("/profile", authHandler.UpdateProfile)

	authed.POST("/workouts", workoutHandler.Create)
	authed.GET("/workouts", workoutHandler.List)
	authed.GET("/workouts/:id", workoutHandler.Get)

	authed.POST("/challenges", challengeHandler.Create)
	authed.GET("/challenges", challengeHandler.List)
	authed.GET("/challenges/:id", challengeHandler.Get)
	authed.POST("/challenges/:id/invitations/accept", challengeHandler.AcceptInvitation)
	authed.POST("/challenges/:id/invitations/decline", challengeHandler.DeclineInvitation)
	authed.GET("/invitations", challengeHandler.ListInvitations)

	authed.POST("/friend-requests", friendHandler.Send)
	authed.GET("/friend-requests", friendHandler.ListIncoming)
	authed.POST("/friend-requests/accept", friendHandler.Accept)
	authed.POST("/friend-requests/reject", friendHandler.Reject)
	authed.GET("/friends", friendHandler.ListFriends)
	authed.DELETE("/friends/:email", friendHandler.RemoveFriend)

	authed.GET("/activities", feedHandler.Public)
	authed.GET("/activities/mine", feedHandler.Mine)

	authed.POST("/posts/:id/likes", socialHandler.Like)
	authed.DELETE("/posts/:id/likes", socialHandler.Unlike)
	authed.GET("/posts/:id/likes", socialHandler.LikeCount)
	authed.POST("/posts/:id/comments", socialHandler.AddComment)
	authed.GET("/posts/:id/comments", socialHandler.ListComments)

	authed.POST("/recipe-plan", suggestionHandler.Plan)
	authed.POST("/exercise-plan", suggestionHandler.Exercises)
	authed.GET("/exercise-options", suggestionHandler.ExerciseOptions)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

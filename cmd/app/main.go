package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/invite_fx"
	"tripmate/cmd/fx/live_fx"
	"tripmate/cmd/fx/mail_fx"
	"tripmate/cmd/fx/trip_fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/infra"
	"tripmate/internal/services"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		mail_fx.Module,
		invite_fx.Module,
		live_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartLiveHub),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

// StartLiveHub runs the notification consumer for the lifetime of the app.
func StartLiveHub(lc fx.Lifecycle, live services.LiveServiceInterface) {
	hubCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go live.Run(hubCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	expenseController *controllers.ExpenseController,
	chatController *controllers.ChatController,
	inviteController *controllers.InviteController,
	liveController *controllers.LiveController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(corsMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		itineraryController,
		expenseController,
		chatController,
		inviteController,
		liveController,
		healthController)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		cfg.AllowOrigins = []string{origin}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"}
	return cors.New(cfg)
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	expenseController *controllers.ExpenseController,
	chatController *controllers.ChatController,
	inviteController *controllers.InviteController,
	liveController *controllers.LiveController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)

	auth := r.Group("/api/auth")
	auth.POST("/signup", accountController.SignUp)
	auth.POST("/login", accountController.Login)
	auth.GET("/profile", middleware.JWTAuthMiddleware(), accountController.Profile)

	trips := r.Group("/api/trips", middleware.JWTAuthMiddleware())
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:id", tripController.GetTrip)
	trips.PATCH("/:id", tripController.PatchTrip)
	trips.GET("/:id/itinerary", itineraryController.GetItinerary)
	trips.POST("/:id/activities", itineraryController.AddActivity)
	trips.POST("/:id/activities/:activityId/reactions", itineraryController.ReactToActivity)
	trips.POST("/:id/hotel-reactions", itineraryController.ReactToHotel)
	trips.POST("/:id/expenses", expenseController.AddExpense)
	trips.GET("/:id/expenses", expenseController.ListExpenses)
	trips.POST("/:id/messages", chatController.AddMessage)
	trips.GET("/:id/messages", chatController.ListMessages)
	trips.GET("/:id/live", liveController.StreamTrip)

	// The :id segment is a trip id on the invite route and an invite id on
	// accept/decline; gin requires the shared wildcard name.
	invites := r.Group("/api/invites", middleware.JWTAuthMiddleware())
	invites.GET("", inviteController.ListInvites)
	invites.POST("/:id/invite", inviteController.CreateInvite)
	invites.POST("/:id/accept", inviteController.AcceptInvite)
	invites.POST("/:id/decline", inviteController.DeclineInvite)
}

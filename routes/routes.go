package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/vacation-server/controllers"
	"github.com/vnkhanh/vacation-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimitAuth(), controllers.Register)
			auth.POST("/login", middleware.RateLimitAuth(), controllers.Login)
			auth.POST("/google/login", middleware.RateLimitAuth(), controllers.GoogleLoginHandler)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
		}

		households := api.Group("/households")
		households.Use(middleware.AuthJWT())
		{
			households.POST("", controllers.CreateHousehold)
			households.GET("/mine", controllers.GetMyHousehold)
			households.GET("/members", middleware.RequireHousehold(), controllers.GetHouseholdMembers)
		}

		invites := api.Group("/invites")
		invites.Use(middleware.AuthJWT())
		{
			invites.POST("", middleware.RequireHousehold(), middleware.RateLimitInvites(), controllers.InvitePartner)
			invites.GET("/pending", controllers.ListPendingInvites)
			invites.POST("/accept", controllers.AcceptInvite)
			invites.DELETE("/:id", middleware.RequireHousehold(), middleware.RequireHouseholdOwner(), controllers.CancelInvite)
		}

		trips := api.Group("/trips")
		trips.Use(middleware.AuthJWT(), middleware.RequireHousehold())
		{
			trips.POST("", controllers.CreateTrip)
			trips.GET("", controllers.ListTrips)
			trips.GET("/:id", middleware.CheckTripAccess(), controllers.GetTripDetail)
			trips.PUT("/:id", middleware.CheckTripAccess(), controllers.UpdateTrip)
			trips.DELETE("/:id", middleware.CheckTripAccess(), controllers.DeleteTrip)

			trips.POST("/:id/expenses", middleware.CheckTripAccess(), controllers.CreateExpense)
			trips.POST("/:id/checklists", middleware.CheckTripAccess(), controllers.CreateChecklist)
			trips.POST("/:id/export", middleware.CheckTripAccess(), controllers.CreateExport)
		}

		expenses := api.Group("/expenses")
		expenses.Use(middleware.AuthJWT(), middleware.RequireHousehold())
		{
			expenses.PUT("/:id", controllers.UpdateExpense)
			expenses.DELETE("/:id", controllers.DeleteExpense)
			expenses.POST("/:id/receipt", controllers.UploadReceipt)
		}

		checklists := api.Group("/checklists")
		checklists.Use(middleware.AuthJWT(), middleware.RequireHousehold())
		{
			checklists.DELETE("/:id", controllers.DeleteChecklist)
			checklists.POST("/:id/items", controllers.CreateChecklistItem)
		}

		items := api.Group("/items")
		items.Use(middleware.AuthJWT(), middleware.RequireHousehold())
		{
			items.PUT("/:id/toggle", controllers.ToggleChecklistItem)
			items.DELETE("/:id", controllers.DeleteChecklistItem)
		}

		api.GET("/calendar", middleware.AuthJWT(), middleware.RequireHousehold(), controllers.GetCalendar)
		api.GET("/stats/yearly", middleware.AuthJWT(), middleware.RequireHousehold(), controllers.GetYearlyStats)
		api.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)
	}
}

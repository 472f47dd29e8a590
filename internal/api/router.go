package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/handler"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(
	r *gin.Engine,
	mw *MiddlewareManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	groupHandler *handler.GroupHandler,
	playerHandler *handler.PlayerHandler,
	equipmentHandler *handler.EquipmentHandler,
	distributionHandler *handler.DistributionHandler,
	scheduleHandler *handler.ScheduleHandler,
) {
	r.Use(mw.Recovery(), mw.Logger(), mw.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", mw.RateLimiterByEndpoint("register"), authHandler.Register)
		auth.POST("/login", mw.RateLimiterByEndpoint("login"), authHandler.Login)
		auth.GET("/check-username", authHandler.CheckUsername)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(mw.JWTAuth(), mw.RateLimiterByEndpoint("api"))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
			users.PATCH("/me/password", userHandler.ChangePassword)
		}

		raids := protected.Group("/raids")
		{
			raids.POST("", catalogHandler.CreateRaid)
			raids.GET("", catalogHandler.ListRaids)
			raids.GET("/:id", catalogHandler.GetRaid)
			raids.PATCH("/:id", catalogHandler.UpdateRaid)
			raids.DELETE("/:id", catalogHandler.DeleteRaid)
		}

		items := protected.Group("/items")
		{
			items.POST("", catalogHandler.CreateItem)
			items.GET("", catalogHandler.ListItems)
			items.GET("/:id", catalogHandler.GetItem)
			items.PATCH("/:id", catalogHandler.UpdateItem)
			items.DELETE("/:id", catalogHandler.DeleteItem)
		}

		protected.GET("/item-types", catalogHandler.ListItemTypes)
		protected.GET("/jobs", catalogHandler.ListJobs)

		currencies := protected.Group("/currencies")
		{
			currencies.POST("", catalogHandler.CreateCurrency)
			currencies.GET("", catalogHandler.ListCurrencies)
		}
		protected.POST("/currency-requirements", catalogHandler.CreateRequirement)

		groups := protected.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.MyGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.POST("/:id/join", groupHandler.JoinGroup)
			groups.DELETE("/:id/leave", groupHandler.LeaveGroup)
			groups.GET("/:id/players", groupHandler.ListPlayers)
			groups.GET("/:id/priority", groupHandler.DistributionPriority)

			groups.POST("/:id/distributions", distributionHandler.Record)
			groups.GET("/:id/distributions", distributionHandler.History)

			groups.POST("/:id/schedules", scheduleHandler.Create)
			groups.GET("/:id/schedules", scheduleHandler.ListByGroup)
		}

		schedules := protected.Group("/schedules")
		{
			schedules.PATCH("/:id", scheduleHandler.Update)
			schedules.DELETE("/:id", scheduleHandler.Delete)
		}

		players := protected.Group("/players")
		{
			players.GET("/:id/equipment-sets", equipmentHandler.ListSetsByPlayer)
			players.GET("/:id/outstanding-items", playerHandler.OutstandingItems)
			players.GET("/:id/currency-needs", playerHandler.CurrencyNeeds)
		}

		sets := protected.Group("/equipment-sets")
		{
			sets.POST("", equipmentHandler.CreateSet)
			sets.GET("/:id", equipmentHandler.GetSet)
			sets.PUT("/:id/equipments", equipmentHandler.ReplaceEquipments)
			sets.GET("/:id/gear-level", equipmentHandler.GearLevel)
		}
	}
}

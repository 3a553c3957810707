package api

import (
	"Islet/internal/api/middleware"
	"Islet/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		syncGroup := apiGroup.Group("/sync")
		{
			syncGroup.POST("/notes", group.SyncHandler.TriggerNoteSync)
			syncGroup.POST("/account", group.SyncHandler.TriggerAccountSync)
			syncGroup.GET("/status", group.SyncHandler.GetStatus)
		}

		noteGroup := apiGroup.Group("/notes")
		{
			noteGroup.GET("", group.NoteHandler.GetNoteList)
			noteGroup.GET("/:note_id", group.NoteHandler.GetNoteDetail)
		}

		accountGroup := apiGroup.Group("/account")
		{
			accountGroup.GET("/latest", group.AccountHandler.GetLatest)
			accountGroup.GET("/history", group.AccountHandler.GetHistory)
		}

		weeklyGroup := apiGroup.Group("/weekly")
		{
			weeklyGroup.POST("", group.WeeklyHandler.CreateWeeklyStat)
			weeklyGroup.GET("/list", group.WeeklyHandler.GetWeeklyStats)
		}

		catGroup := apiGroup.Group("/cats")
		{
			catGroup.GET("", group.CatHandler.GetCats)
			catGroup.POST("", group.CatHandler.CreateCat)
			catGroup.PUT("/:cat_id", group.CatHandler.UpdateCat)
			catGroup.DELETE("/:cat_id", group.CatHandler.DeleteCat)
		}

		agentGroup := apiGroup.Group("/agent")
		{
			agentGroup.POST("/chat", group.AgentHandler.Chat)
			agentGroup.POST("/topics", group.AgentHandler.SuggestTopics)
			agentGroup.POST("/extract", group.AgentHandler.ExtractStats)
		}
	}

	return r
}

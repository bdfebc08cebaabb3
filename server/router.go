package server

import (
	"net/http"
	"time"

	httpHandler "github.com/omkar342/youtube-dashboard-server/interfaces/http"
	"github.com/omkar342/youtube-dashboard-server/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	youtubeHandler httpHandler.IYouTubeHandler,
	noteHandler httpHandler.INoteHandler,
	aiHandler httpHandler.IAIHandler,
	clientURL string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")

	// Provider-facing routes require a bearer token on every request.
	yt := api.Group("/youtube")
	yt.Use(middleware.BearerToken())
	{
		yt.GET("/video/:id", youtubeHandler.GetVideo)
		yt.PUT("/video/:id", youtubeHandler.UpdateVideo)
		yt.GET("/comments", youtubeHandler.ListComments)
		yt.POST("/comments/reply", youtubeHandler.ReplyToComment)
		yt.DELETE("/comments/:id", youtubeHandler.DeleteComment)
	}

	// Note routes are local only; registered when the note store is available.
	if noteHandler != nil {
		notes := api.Group("/notes")
		{
			notes.GET("/:videoId", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}
	}

	api.POST("/ai/suggest-titles", aiHandler.SuggestTitles)

	return router
}

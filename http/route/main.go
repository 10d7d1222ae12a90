package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ola007-cpu/webApp/http/controller"
	middlewares "github.com/ola007-cpu/webApp/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api")
	{
		apiRoutes.Use(middles.IdentityMiddleware)

		videoRoutes := apiRoutes.Group("/videos")
		{
			videoRoutes.GET("", ctrl.ListVideos)
			videoRoutes.POST("", ctrl.UploadVideo)
			videoRoutes.GET("/:id", ctrl.GetVideo)
		}

		apiRoutes.POST("/likes", ctrl.LikeVideo)

		commentRoutes := apiRoutes.Group("/comments")
		{
			commentRoutes.GET("", ctrl.ListComments)
			commentRoutes.POST("", ctrl.CreateComment)
		}
	}
	return r
}

package Server

import (
	"Resona/Globals"
	"net/http"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes() {

	Globals.WebServer.GET("/health", HandleHealth)

	API := Globals.WebServer.Group(Globals.APIPrefix)

	API.GET("/jiosaavn/search", HandleResolve)
	API.GET("/jiosaavn/search/all", HandleSearchAll)

	API.GET("/yt/search", HandleYouTubeSearch)

}

func HandleHealth(Context *gin.Context) {

	Context.JSON(http.StatusOK, gin.H{"status": "ok"})

}

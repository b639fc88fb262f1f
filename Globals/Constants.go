package Globals

import (
	"os"

	"github.com/gin-gonic/gin"
)

const (

	DefaultPort = "5000"

	APIPrefix = "/api"

)

var WebServer *gin.Engine

func InitWebServer() {

	gin.SetMode(gin.ReleaseMode)

	WebServer = gin.Default()

}

// ServerPort returns the port the web server binds to, from PORT or the default.
func ServerPort() string {

	Port := os.Getenv("PORT")

	if Port == "" {

		Port = DefaultPort

	}

	return Port

}

package main

import (
	"Resona/APIs/Innertube"
	"Resona/APIs/JioSaavn"
	"Resona/Globals"
	"Resona/Server"
	"Resona/Utils"
	"os"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load(".env")

	Globals.InitWebServer()

	JioSaavn.Initialize()

	InnerTubeError := Innertube.InitClient()

	if InnerTubeError != nil {

		os.Exit(1)

	}

	Server.InitializeRoutes()

	go func() {

		RunError := Globals.WebServer.Run(":" + Globals.ServerPort())

		if RunError != nil {

			Utils.Logger.Error("Web server stopped: " + RunError.Error())
			os.Exit(1)

		}

	}()

	Utils.Logger.Info("Resona listening on port " + Globals.ServerPort())

	Utils.Hang()

}

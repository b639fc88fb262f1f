package Server

import (
	"Resona/APIs/Innertube"
	"Resona/APIs/JioSaavn"
	"Resona/Validation"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleResolve runs the track-resolution pipeline for a (title, artist) query.
func HandleResolve(Context *gin.Context) {

	if !Validation.RequireQuery(Context, "title", "artist") {

		return

	}

	Title := Context.Query("title")
	Artist := Context.Query("artist")

	Matched, ErrorResolving := JioSaavn.Client.Resolve(Title, Artist)

	if ErrorResolving != nil {

		switch {

			case errors.Is(ErrorResolving, JioSaavn.ErrTrackNotFound):

				Context.JSON(http.StatusNotFound, gin.H{"error": "Music stream not found in JioSaavn results"})

			case errors.Is(ErrorResolving, JioSaavn.ErrUpstreamUnavailable):

				Context.JSON(http.StatusBadGateway, gin.H{"error": "JioSaavn is currently unreachable"})

			default:

				Context.JSON(http.StatusInternalServerError, gin.H{"error": ErrorResolving.Error()})

		}

		return

	}

	Context.JSON(http.StatusOK, Matched.Flatten())

}

// HandleSearchAll returns every normalized hit for a free-text catalog query.
func HandleSearchAll(Context *gin.Context) {

	if !Validation.RequireQuery(Context, "q") {

		return

	}

	Query := Context.Query("q")
	Limit := parseLimit(Context.Query("limit"), JioSaavn.DefaultResultLimit)

	Tracks, ErrorSearching := JioSaavn.Client.SearchAll(Query, Limit)

	if ErrorSearching != nil {

		Context.JSON(http.StatusBadGateway, gin.H{"error": ErrorSearching.Error()})
		return

	}

	Context.JSON(http.StatusOK, gin.H{

		"query":   Query,
		"total":   len(Tracks),
		"results": Tracks,

	})

}

// HandleYouTubeSearch proxies a song search against YouTube Music.
func HandleYouTubeSearch(Context *gin.Context) {

	if !Validation.RequireQuery(Context, "q") {

		return

	}

	Query := Context.Query("q")
	Limit := parseLimit(Context.Query("limit"), 20)

	Results := Innertube.SearchForSongs(Query)

	if len(Results) > Limit {

		Results = Results[:Limit]

	}

	Context.JSON(http.StatusOK, gin.H{

		"query":   Query,
		"results": Results,

	})

}

func parseLimit(Raw string, Default int) int {

	if Raw == "" {

		return Default

	}

	Limit, ErrorParsing := strconv.Atoi(Raw)

	if ErrorParsing != nil || Limit <= 0 {

		return Default

	}

	return Limit

}

package Validation

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireQuery checks that every named query parameter is present and non-empty.
// On a missing parameter it writes the 400 response itself and returns false,
// so handlers bail out before any outbound call happens.
func RequireQuery(Context *gin.Context, Names ...string) bool {

	Missing := []string{}

	for _, Name := range Names {

		if Context.Query(Name) == "" {

			Missing = append(Missing, Name)

		}

	}

	if len(Missing) == 0 {

		return true

	}

	Context.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required query parameter(s): %s", strings.Join(Missing, ", "))})

	return false

}

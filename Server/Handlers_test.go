package Server

import (
	"Resona/APIs/JioSaavn"
	"Resona/Globals"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter(Upstream *httptest.Server) {

	gin.SetMode(gin.TestMode)

	Globals.WebServer = gin.New()

	JioSaavn.Client = &JioSaavn.JioSaavn{BaseURL: Upstream.URL, HTTPClient: Upstream.Client()}

	InitializeRoutes()

}

func performRequest(Path string) *httptest.ResponseRecorder {

	Recorder := httptest.NewRecorder()
	Request := httptest.NewRequest(http.MethodGet, Path, nil)

	Globals.WebServer.ServeHTTP(Recorder, Request)

	return Recorder

}

func TestHandleHealth(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {}))
	defer Upstream.Close()

	setupRouter(Upstream)

	if Recorder := performRequest("/health"); Recorder.Code != http.StatusOK {

		t.Errorf("health status = %d", Recorder.Code)

	}

}

func TestHandleResolveValidation(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {

		t.Error("validation failure must short-circuit before any outbound call")

	}))

	defer Upstream.Close()

	setupRouter(Upstream)

	Cases := []string{

		"/api/jiosaavn/search",
		"/api/jiosaavn/search?title=&artist=x",
		"/api/jiosaavn/search?title=x",
		"/api/jiosaavn/search/all",

	}

	for _, Path := range Cases {

		if Recorder := performRequest(Path); Recorder.Code != http.StatusBadRequest {

			t.Errorf("GET %s status = %d, want 400", Path, Recorder.Code)

		}

	}

}

func TestHandleResolveNotFound(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {

		fmt.Fprint(Writer, `{"results": []}`)

	}))

	defer Upstream.Close()

	setupRouter(Upstream)

	if Recorder := performRequest("/api/jiosaavn/search?title=Nothing&artist=Nobody"); Recorder.Code != http.StatusNotFound {

		t.Errorf("status = %d, want 404", Recorder.Code)

	}

}

func TestHandleResolveUpstreamDown(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {

		Writer.WriteHeader(http.StatusBadGateway)

	}))

	defer Upstream.Close()

	setupRouter(Upstream)

	if Recorder := performRequest("/api/jiosaavn/search?title=Creep&artist=Radiohead"); Recorder.Code != http.StatusBadGateway {

		t.Errorf("status = %d, want 502", Recorder.Code)

	}

}

func TestHandleResolveSuccess(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {

		fmt.Fprint(Writer, `{"results": [{
			"title": "Creep",
			"year": "1993",
			"more_info": {
				"duration": "239",
				"album": "Pablo Honey",
				"artistMap": {"primary_artists": [{"name": "Radiohead"}]}
			}
		}]}`)

	}))

	defer Upstream.Close()

	setupRouter(Upstream)

	Recorder := performRequest("/api/jiosaavn/search?title=Creep&artist=Radiohead")

	if Recorder.Code != http.StatusOK {

		t.Fatalf("status = %d, body %s", Recorder.Code, Recorder.Body.String())

	}

	var Payload struct {

		Name      string `json:"name"`
		AlbumName string `json:"albumName"`

		Duration *int `json:"duration"`

		Artists []json.RawMessage `json:"artists"`

		DownloadURL *string `json:"downloadUrl"`

	}

	if ErrorDecoding := json.Unmarshal(Recorder.Body.Bytes(), &Payload); ErrorDecoding != nil {

		t.Fatalf("decoding response: %v", ErrorDecoding)

	}

	if Payload.Name != "Creep" || Payload.AlbumName != "Pablo Honey" {

		t.Errorf("payload = %+v", Payload)

	}

	if Payload.Duration == nil || *Payload.Duration != 239 {

		t.Errorf("duration = %v", Payload.Duration)

	}

	if len(Payload.Artists) == 0 {

		t.Error("flattened artists must be non-empty")

	}

	if Payload.DownloadURL != nil {

		t.Error("missing encrypted link must flatten to null downloadUrl")

	}

}

func TestHandleSearchAll(t *testing.T) {

	Upstream := httptest.NewServer(http.HandlerFunc(func(Writer http.ResponseWriter, Request *http.Request) {

		if Request.URL.Query().Get("n") != "3" {

			t.Errorf("limit = %q, want 3", Request.URL.Query().Get("n"))

		}

		fmt.Fprint(Writer, `{"results": [{"title": "One"}, {"title": "Two"}]}`)

	}))

	defer Upstream.Close()

	setupRouter(Upstream)

	Recorder := performRequest("/api/jiosaavn/search/all?q=test&limit=3")

	if Recorder.Code != http.StatusOK {

		t.Fatalf("status = %d", Recorder.Code)

	}

	if Body := Recorder.Body.String(); !strings.Contains(Body, `"total":2`) {

		t.Errorf("body = %s", Body)

	}

}

// Package server exposes the PsyFile reader over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mewkiz/psy"
)

// maxUpload is the largest accepted multipart form; a PsyFile INFO chunk is
// well below 1 MB.
const maxUpload = 32 << 20

// ParseResponse is the body of a reply to POST /api/v1/parse.
type ParseResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Tag     string    `json:"tag,omitempty"`
	File    *psy.File `json:"file,omitempty"`
}

// Handler handles the API requests.
type Handler struct{}

// NewHandler returns a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NewRouter returns the API router. Cross-origin requests are accepted from
// allowOrigins; none are accepted if it is empty.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if len(allowOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = allowOrigins
		config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		router.Use(cors.New(config))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/parse", h.Parse)
	}
	return router
}

// HealthCheck reports that the service is running.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// Parse reads the PsyFile uploaded as the multipart form field "file" and
// replies with its song metadata.
func (h *Handler) Parse(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUpload); err != nil {
		c.JSON(http.StatusBadRequest, ParseResponse{
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ParseResponse{
			Message: "PsyFile is required",
		})
		return
	}
	r, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ParseResponse{
			Message: fmt.Sprintf("Failed to open upload: %v", err),
		})
		return
	}
	defer r.Close()

	f, err := psy.ParseStream(r)
	if err != nil {
		c.JSON(statusOf(err), errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, ParseResponse{
		Success: true,
		File:    f,
	})
}

// statusOf returns the HTTP status reported for a parse error.
func statusOf(err error) int {
	var ce *psy.UnexpectedChunkError
	switch {
	case errors.As(err, &ce), errors.Is(err, psy.ErrUnexpectedEOF):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) ParseResponse {
	resp := ParseResponse{Message: err.Error()}
	var ce *psy.UnexpectedChunkError
	if errors.As(err, &ce) {
		resp.Tag = string(ce.Tag)
	}
	return resp
}

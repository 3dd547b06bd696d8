package http

import (
	"net/http"

	"notes-api/internal/handler/http/respond"
)

// PingResponse is the body of GET /ping.
type PingResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"API Services"`
}

// PingHandler answers the service's basic health check.
type PingHandler struct{}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Reports that the API process is serving requests
// @Tags         health
// @Produce      json
// @Success      200 {object} PingResponse
// @Router       /ping [get]
func (PingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, PingResponse{Status: "ok", Message: "API Services"})
}

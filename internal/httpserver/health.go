package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"icook-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From iCook Chatbot With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "icook-chatbot"
)

// rootCheck answers the bare uptime probe.
// @Summary Root Check
// @Description Plain-text uptime probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "The server is working!"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	c.String(http.StatusOK, "The server is working!")
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

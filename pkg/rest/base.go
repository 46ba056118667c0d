package rest

import (
	"github.com/aero-sizing/wingweight/internal/logger"
	"github.com/aero-sizing/wingweight/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// REST server evaluating the wing weight surrogates, one design point per request
type Server struct {
	router  *gin.Engine
	emitter *metrics.MetricsEmitter
}

// create a REST server registering its metrics with the given registry
func NewServer(registry *prometheus.Registry) *Server {
	server := &Server{
		router:  gin.New(),
		emitter: metrics.InitMetricsAndEmitter(registry),
	}
	server.router.Use(gin.Recovery())

	server.router.GET("/models", server.getModels)
	server.router.GET("/models/:name", server.getModel)
	server.router.GET("/models/:name/defaults", server.getModelDefaults)

	server.router.POST("/evaluate/:name", server.evaluate)
	server.router.POST("/gradient/:name", server.gradient)

	server.router.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return server
}

// Handler exposes the router, e.g. for httptest
func (server *Server) Handler() *gin.Engine {
	return server.router
}

// start server on addr (host:port)
func (server *Server) Run(addr string) error {
	logger.Log.Infow("starting wing weight server", "address", addr)
	return server.router.Run(addr)
}

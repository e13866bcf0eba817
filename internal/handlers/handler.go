package handlers

import (
	"net/http"
	"time"

	"transport_fleet/internal/logger"
	"transport_fleet/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	// The React client runs on another origin.
	router.Use(cors.Default())
	router.Use(h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	h.registerAuthRoutes(router)

	// Fleet CRUD endpoints (protected)
	h.registerFleetRoutes(router)

	// Live fleet summary over WebSocket — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/registro", h.registro)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerFleetRoutes(r *gin.Engine) {
	protected := r.Group("/", h.authMiddleware)
	{
		h.registerVehicleRoutes(protected)
		h.registerDriverRoutes(protected)
		h.registerTripRoutes(protected)
	}
}

func (h *Handler) registerVehicleRoutes(g *gin.RouterGroup) {
	vehiculos := g.Group("/vehiculos")
	{
		vehiculos.GET("", h.listVehicles)
		vehiculos.GET("/:id", h.getVehicle)
		vehiculos.POST("", h.createVehicle)
		vehiculos.PUT("/:id", h.updateVehicle)
		vehiculos.DELETE("/:id", h.deleteVehicle)
	}
}

func (h *Handler) registerDriverRoutes(g *gin.RouterGroup) {
	conductores := g.Group("/conductores")
	{
		conductores.GET("", h.listDrivers)
		conductores.GET("/:id", h.getDriver)
		conductores.POST("", h.createDriver)
		conductores.PUT("/:id", h.updateDriver)
		conductores.DELETE("/:id", h.deleteDriver)
	}
}

func (h *Handler) registerTripRoutes(g *gin.RouterGroup) {
	viajes := g.Group("/viajes")
	{
		viajes.GET("", h.listTrips)
		viajes.GET("/:id", h.getTrip)
		viajes.POST("", h.createTrip)
		viajes.PUT("/:id", h.updateTrip)
		viajes.DELETE("/:id", h.deleteTrip)

		// History and distance totals per vehicle / driver
		viajes.GET("/vehiculo/:id", h.tripsByVehicle)
		viajes.GET("/conductor/:id", h.tripsByDriver)
		viajes.GET("/vehiculo/:id/kilometros", h.kilometrosByVehicle)
		viajes.GET("/conductor/:id/kilometros", h.kilometrosByDriver)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger tags every request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set(ctxRequestID, requestID)
	c.Header("X-Request-Id", requestID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

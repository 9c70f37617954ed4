package handlers

import (
	"net/http"
	"time"

	"second_brain/internal/logger"
	"second_brain/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	AllowedOrigins []string
	// RateLimitRPS <= 0 disables rate limiting on signup/signin.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.GET("/health", h.health)

	// everything below touches the store
	store := api.Group("", h.storeCheckMiddleware)

	h.registerAuthRoutes(store, opts)
	h.registerPublicBrainRoutes(store)
	h.registerProtectedRoutes(store.Group("", h.userIdMiddleware))

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.RouterGroup, opts RouterOptions) {
	auth := r.Group("")
	if opts.RateLimitRPS > 0 {
		limiter := newIPRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)
		auth.Use(h.rateLimitMiddleware(limiter))
	}
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerPublicBrainRoutes(r *gin.RouterGroup) {
	brain := r.Group("/brain")
	{
		brain.GET("/:shareLink", h.getSharedBrain)
		brain.GET("/:shareLink/live", h.wsSharedBrain)
	}
}

func (h *Handler) registerProtectedRoutes(api *gin.RouterGroup) {
	content := api.Group("/content")
	{
		content.POST("", h.addContent)
		content.GET("", h.listContent)
		content.DELETE("/:id", h.deleteContent)
	}
	api.POST("/brain/share", h.shareBrain)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowWildcard:    true,
		MaxAge:           12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// requestLogger emits one structured line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// internalError answers 500 without leaking the cause.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, logKey, err, kv...)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/notegate/backend/internal/config"
	"github.com/notegate/backend/internal/service"
)

// NewRouter wires the full HTTP surface: public note reads, the login
// endpoint, and the token-guarded /admin group.
func NewRouter(cfg config.Config, log zerolog.Logger, authSvc *service.AuthService, noteSvc *service.NoteService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if cfg.CORS.FrontendURL != "" {
		origins = append(origins, cfg.CORS.FrontendURL)
	}
	r.Use(CORSMiddleware(origins, true))

	authHandler := NewAuthHandler(authSvc)
	noteHandler := NewNoteHandler(noteSvc)

	r.GET("/health", Health)
	r.POST("/login", authHandler.Login)
	r.GET("/contents", noteHandler.ListPublic)
	r.GET("/contents/:id", noteHandler.GetPublicByID)

	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(authSvc))
	{
		admin.GET("/contents", noteHandler.ListMine)
		admin.POST("/contents", noteHandler.Create)
		admin.GET("/contents/:id", noteHandler.GetByID)
		admin.PUT("/contents/:id", noteHandler.Update)
		admin.DELETE("/contents/:id", noteHandler.Delete)
		admin.GET("/stats", noteHandler.Stats)
	}

	return r
}

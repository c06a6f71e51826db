package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/card/:uid", s.cardHandler)
		api.GET("/sprite/:category/:code", s.spriteHandler)
		api.GET("/background", s.backgroundHandler)
		api.GET("/qr", qrHandler)
	}
}

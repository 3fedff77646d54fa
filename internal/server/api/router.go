package api

import (
	"github.com/gin-gonic/gin"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
)

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	adminOnly := s.requireRole(auth.RoleAdmin)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/refresh-token", s.authenticate, s.handleRefreshToken)
		authGroup.PUT("/password", s.authenticate, s.handleChangePassword)
	}

	clientGroup := r.Group("/clients", s.authenticate)
	{
		clientGroup.GET("", s.handleListClients)
		clientGroup.GET("/:id", s.handleGetClient)
		clientGroup.POST("", adminOnly, s.handleCreateClient)
		clientGroup.PUT("/:id", adminOnly, s.handleUpdateClient)
		clientGroup.DELETE("/:id", adminOnly, s.handleDeleteClient)
	}

	productGroup := r.Group("/products", s.authenticate)
	{
		productGroup.GET("", s.handleListProducts)
		productGroup.GET("/:id", s.handleGetProduct)
		productGroup.POST("", adminOnly, s.handleCreateProduct)
		productGroup.PUT("/:id", adminOnly, s.handleUpdateProduct)
		productGroup.DELETE("/:id", adminOnly, s.handleDeleteProduct)
	}

	orderGroup := r.Group("/orders", s.authenticate)
	{
		orderGroup.GET("", s.handleListOrders)
		orderGroup.GET("/:id", s.handleGetOrder)
		orderGroup.POST("", adminOnly, s.handleCreateOrder)
		orderGroup.PUT("/:id", adminOnly, s.handleUpdateOrder)
		orderGroup.DELETE("/:id", adminOnly, s.handleDeleteOrder)
	}

	return r
}

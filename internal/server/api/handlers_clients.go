package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/services"
)

type clientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	CPF   string `json:"cpf" binding:"required"`
}

type clientUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// CPF stays out of responses.
type clientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newClientResponse(client *models.Client) clientResponse {
	return clientResponse{ID: client.ID, Name: client.Name, Email: client.Email}
}

func (s *Server) handleCreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	client, err := s.clients.Create(c.Request.Context(), req.Name, req.Email, req.CPF)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newClientResponse(client))
}

func (s *Server) handleGetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := s.clients.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newClientResponse(client))
}

func (s *Server) handleListClients(c *gin.Context) {
	limit, offset, ok := paginationParams(c)
	if !ok {
		return
	}

	filter := models.ClientFilter{
		Name:   c.Query("name"),
		Email:  c.Query("email"),
		Limit:  limit,
		Offset: offset,
	}

	clientList, err := s.clients.List(c.Request.Context(), filter)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	responses := make([]clientResponse, 0, len(clientList))
	for _, client := range clientList {
		responses = append(responses, newClientResponse(client))
	}

	c.JSON(http.StatusOK, gin.H{"clients": responses})
}

func (s *Server) handleUpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req clientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	client, err := s.clients.Update(c.Request.Context(), id, services.ClientUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newClientResponse(client))
}

func (s *Server) handleDeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.clients.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

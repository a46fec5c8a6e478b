package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staybook/models"
	"staybook/services/rooms"
)

// RoomHandler serves the room catalog endpoints.
type RoomHandler struct {
	Service rooms.RoomService
	Logger  *zap.Logger
}

func NewRoomHandler(service rooms.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Service: service, Logger: logger}
}

// SearchRoomsHandler lists available rooms matching the query filters.
func (h *RoomHandler) SearchRoomsHandler(c *gin.Context) {
	criteria := models.RoomSearchCriteria{
		Type: c.Query("type"),
	}
	if v := c.Query("minCapacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MinCapacity = n
		}
	}
	if v := c.Query("maxRate"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxRate = f
		}
	}

	roomList, err := h.Service.SearchRooms(c.Request.Context(), criteria)
	if err != nil {
		h.Logger.Error("room search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "room search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": roomList})
}

// GetRoomHandler returns one room by id.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Service.GetRoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// AddRoomHandler registers a new room in the catalog.
func (h *RoomHandler) AddRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.AddRoom(c.Request.Context(), &room)
	if err != nil {
		h.Logger.Error("failed to add room", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

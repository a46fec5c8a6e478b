package rooms

import (
	"context"

	"github.com/go-redis/redis/v8"

	roomRepo "staybook/database/repository/room"
	"staybook/models"
)

// RoomService exposes the room catalog to the booking flow.
type RoomService interface {
	GetRoomByID(ctx context.Context, roomID string) (*models.Room, error)
	SearchRooms(ctx context.Context, criteria models.RoomSearchCriteria) ([]models.Room, error)
	AddRoom(ctx context.Context, room *models.Room) (*models.Room, error)
}

// DefaultRoomService implements RoomService with a Redis read-through cache
// in front of the Mongo repository.
type DefaultRoomService struct {
	Repo        roomRepo.RoomRepository
	CacheClient *redis.Client
}

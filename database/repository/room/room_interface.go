package room

import (
	"context"

	"staybook/models"
)

// RoomRepository defines persistence operations for the room catalog.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Search(ctx context.Context, criteria models.RoomSearchCriteria) ([]models.Room, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"staybook/models"
	"staybook/utils"
)

const (
	roomCacheKeyPrefix = "room:"
	roomCacheTTL       = 5 * time.Minute
)

// GetRoomByID returns a single room, consulting the cache first. Cache
// misses and cache failures both fall through to the repository.
func (s *DefaultRoomService) GetRoomByID(ctx context.Context, roomID string) (*models.Room, error) {
	cacheKey := roomCacheKeyPrefix + roomID

	if s.CacheClient != nil {
		data, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var room models.Room
			if err := json.Unmarshal([]byte(data), &room); err == nil {
				return &room, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("room cache read failed", zap.String("roomId", roomID), zap.Error(err))
		}
	}

	room, err := s.Repo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(room); err == nil {
			if err := s.CacheClient.Set(ctx, cacheKey, data, roomCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("room cache write failed", zap.String("roomId", roomID), zap.Error(err))
			}
		}
	}
	return room, nil
}

// SearchRooms returns available rooms matching the criteria.
func (s *DefaultRoomService) SearchRooms(ctx context.Context, criteria models.RoomSearchCriteria) ([]models.Room, error) {
	rooms, err := s.Repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("room search failed: %w", err)
	}
	return rooms, nil
}

// AddRoom registers a new room in the catalog.
func (s *DefaultRoomService) AddRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if room.Type == "" || room.NightlyRate <= 0 || room.Capacity <= 0 {
		return nil, fmt.Errorf("room requires a type, a positive nightly rate and a positive capacity")
	}
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	room.Available = true
	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

package room

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"staybook/database"
	"staybook/models"
)

// MongoRoomRepo is the MongoDB implementation of RoomRepository.
type MongoRoomRepo struct {
	collection *mongo.Collection
}

// NewMongoRoomRepo returns a RoomRepository backed by the "rooms" collection.
func NewMongoRoomRepo() *MongoRoomRepo {
	repo := &MongoRoomRepo{collection: database.Collection("rooms")}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		// Index creation is best-effort at startup; queries still work without.
		fmt.Printf("room repo: failed to ensure indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("room %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) Search(ctx context.Context, criteria models.RoomSearchCriteria) ([]models.Room, error) {
	filter := bson.M{"available": true}
	if criteria.Type != "" {
		filter["type"] = criteria.Type
	}
	if criteria.MinCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": criteria.MinCapacity}
	}
	if criteria.MaxRate > 0 {
		filter["nightlyRate"] = bson.M{"$lte": criteria.MaxRate}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("room search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode room search results: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	update := bson.M{"$set": bson.M{"available": available, "updatedAt": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update room availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("room %s not found", id)
	}
	return nil
}

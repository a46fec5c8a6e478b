package rooms

import (
	"context"
	"errors"
	"testing"

	"staybook/models"
)

type memRoomRepo struct {
	rooms map[string]*models.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: map[string]*models.Room{}}
}

func (r *memRoomRepo) Create(_ context.Context, room *models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	return room, nil
}

func (r *memRoomRepo) Search(_ context.Context, criteria models.RoomSearchCriteria) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.rooms {
		if criteria.Type != "" && room.Type != criteria.Type {
			continue
		}
		out = append(out, *room)
	}
	return out, nil
}

func (r *memRoomRepo) SetAvailability(_ context.Context, id string, available bool) error {
	room, ok := r.rooms[id]
	if !ok {
		return errors.New("room not found")
	}
	room.Available = available
	return nil
}

func TestAddRoomValidation(t *testing.T) {
	svc := &DefaultRoomService{Repo: newMemRoomRepo()}
	ctx := context.Background()

	cases := []models.Room{
		{NightlyRate: 100, Capacity: 2},    // no type
		{Type: "standard", Capacity: 2},    // no rate
		{Type: "standard", NightlyRate: -5, Capacity: 2},
		{Type: "standard", NightlyRate: 100}, // no capacity
	}
	for i, room := range cases {
		if _, err := svc.AddRoom(ctx, &room); err == nil {
			t.Errorf("case %d: expected validation to reject %+v", i, room)
		}
	}
}

func TestAddRoomAssignsIDAndAvailability(t *testing.T) {
	repo := newMemRoomRepo()
	svc := &DefaultRoomService{Repo: repo}

	room, err := svc.AddRoom(context.Background(), &models.Room{
		Type:        "deluxe",
		NightlyRate: 250,
		Capacity:    3,
	})
	if err != nil {
		t.Fatalf("AddRoom failed: %v", err)
	}
	if room.ID == "" {
		t.Error("expected a generated room id")
	}
	if !room.Available {
		t.Error("new rooms should start available")
	}
	if _, ok := repo.rooms[room.ID]; !ok {
		t.Error("room was not persisted")
	}
}

func TestGetRoomByIDWithoutCache(t *testing.T) {
	repo := newMemRoomRepo()
	repo.rooms["r1"] = &models.Room{ID: "r1", Type: "standard", NightlyRate: 120}
	svc := &DefaultRoomService{Repo: repo}

	room, err := svc.GetRoomByID(context.Background(), "r1")
	if err != nil {
		t.Fatalf("GetRoomByID failed: %v", err)
	}
	if room.Type != "standard" {
		t.Errorf("unexpected room: %+v", room)
	}

	if _, err := svc.GetRoomByID(context.Background(), "missing"); err == nil {
		t.Error("expected an error for an unknown room")
	}
}

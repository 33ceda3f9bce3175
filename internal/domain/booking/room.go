package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomID   = errors.New("room id cannot be empty")
	ErrEmptyRoomName = errors.New("room name cannot be empty")
	ErrInvalidGuests = errors.New("room max guests must be positive")
	ErrUnknownRoom   = errors.New("room is not part of the catalog")
)

// Room mirrors the catalog entry returned by the booking API.
type Room struct {
	id                string
	name              string
	basePricePerNight Money
	maxGuests         int
}

func NewRoom(id, name string, basePricePerNight Money, maxGuests int) (*Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRoomID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if maxGuests <= 0 {
		return nil, ErrInvalidGuests
	}

	return &Room{
		id:                id,
		name:              name,
		basePricePerNight: basePricePerNight,
		maxGuests:         maxGuests,
	}, nil
}

func (r *Room) ID() string               { return r.id }
func (r *Room) Name() string             { return r.name }
func (r *Room) BasePricePerNight() Money { return r.basePricePerNight }
func (r *Room) MaxGuests() int           { return r.maxGuests }

// Catalog is the room list loaded once per booking session.
type Catalog []*Room

func (c Catalog) Find(id string) (*Room, bool) {
	for _, r := range c {
		if r.id == id {
			return r, true
		}
	}
	return nil, false
}

func (c Catalog) First() (*Room, bool) {
	if len(c) == 0 {
		return nil, false
	}
	return c[0], true
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/octet-systems/pebbleshotel/internal/domain"
)

// snapshot - формат файла состояния: массивы rooms и bookings
// (плюс мероприятия и учетные записи администраторов), даты в RFC 3339.
type snapshot struct {
	Rooms    []*domain.Room      `json:"rooms"`
	Bookings []*domain.Booking   `json:"bookings"`
	Events   []*domain.Event     `json:"events,omitempty"`
	Admins   []*domain.AdminUser `json:"admins,omitempty"`
}

// Store хранит журнал в памяти. Все изменения выполняются под одной
// блокировкой записи, поэтому проверка пересечений и вставка брони атомарны.
// Если задан path, после каждого изменения состояние сбрасывается на диск;
// при ошибке записи изменение откатывается.
type Store struct {
	mu       sync.RWMutex
	rooms    map[string]*domain.Room
	bookings map[string]*domain.Booking
	codes    map[string]string
	events   map[string]*domain.Event
	admins   map[string]*domain.AdminUser
	path     string
}

func New() *Store {
	return &Store{
		rooms:    make(map[string]*domain.Room),
		bookings: make(map[string]*domain.Booking),
		codes:    make(map[string]string),
		events:   make(map[string]*domain.Event),
		admins:   make(map[string]*domain.AdminUser),
	}
}

// Open загружает состояние из path, если файл существует.
func Open(path string) (*Store, error) {
	s := New()
	s.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	for _, r := range snap.Rooms {
		s.rooms[r.ID] = r
	}
	for _, b := range snap.Bookings {
		s.bookings[b.ID] = b
		s.codes[b.ConfirmationCode] = b.ID
	}
	for _, e := range snap.Events {
		s.events[e.ID] = e
	}
	for _, a := range snap.Admins {
		s.admins[a.ID] = a
	}

	return s, nil
}

// Seed заполняет пустое хранилище. Непустое хранилище не трогается.
func (s *Store) Seed(ctx context.Context, rooms []*domain.Room, bookings []*domain.Booking, events []*domain.Event) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rooms) > 0 || len(s.bookings) > 0 || len(s.events) > 0 {
		return false, nil
	}

	for _, r := range rooms {
		s.rooms[r.ID] = r.Clone()
	}
	for _, b := range bookings {
		s.bookings[b.ID] = b.Clone()
		s.codes[b.ConfirmationCode] = b.ID
	}
	for _, e := range events {
		s.events[e.ID] = e.Clone()
	}

	if err := s.persistLocked(); err != nil {
		s.rooms = make(map[string]*domain.Room)
		s.bookings = make(map[string]*domain.Booking)
		s.codes = make(map[string]string)
		s.events = make(map[string]*domain.Event)
		return false, err
	}

	return true, nil
}

// commitLocked сохраняет снимок, а при ошибке вызывает undo.
func (s *Store) commitLocked(undo func()) error {
	if err := s.persistLocked(); err != nil {
		undo()
		return err
	}
	return nil
}

func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}

	snap := snapshot{
		Rooms:    sortedRooms(s.rooms),
		Bookings: make([]*domain.Booking, 0, len(s.bookings)),
		Events:   sortedEvents(s.events),
		Admins:   make([]*domain.AdminUser, 0, len(s.admins)),
	}
	for _, b := range s.bookings {
		snap.Bookings = append(snap.Bookings, b)
	}
	sort.Slice(snap.Bookings, func(i, j int) bool {
		bi, bj := snap.Bookings[i], snap.Bookings[j]
		if !bi.CreatedAt.Equal(bj.CreatedAt) {
			return bi.CreatedAt.Before(bj.CreatedAt)
		}
		return bi.ID < bj.ID
	})
	for _, a := range s.admins {
		snap.Admins = append(snap.Admins, a)
	}
	sort.Slice(snap.Admins, func(i, j int) bool { return snap.Admins[i].Email < snap.Admins[j].Email })

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}

func sortedRooms(m map[string]*domain.Room) []*domain.Room {
	res := make([]*domain.Room, 0, len(m))
	for _, r := range m {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

func sortedEvents(m map[string]*domain.Event) []*domain.Event {
	res := make([]*domain.Event, 0, len(m))
	for _, e := range m {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.Before(res[j].Date)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

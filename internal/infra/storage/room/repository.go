package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Repository in-memory хранилище номеров.
//
// Список хранится как неизменяемый снимок: каждая мутация создает новый слайс,
// поэтому потребители, получившие предыдущий снимок, никогда не видят изменений
// посреди чтения. Подписчики получают полный список после каждого изменения.
type Repository struct {
	mu           sync.RWMutex
	rooms        []domain.Room
	subscribers  map[int]chan []domain.Room
	nextSubID    int
	readLatency  time.Duration
	writeLatency time.Duration
}

// NewRepository создает хранилище, заполненное начальным набором номеров
func NewRepository(seed []domain.Room, readLatency, writeLatency time.Duration) (*Repository, error) {
	seen := make(map[int64]struct{}, len(seed))
	for _, r := range seed {
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("%w: id=%d", ErrDuplicateRoomID, r.ID)
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("%w: id=%d has negative price", ErrInvalidRoom, r.ID)
		}
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("%w: id=%d has unknown category %q", ErrInvalidRoom, r.ID, r.Category)
		}
		seen[r.ID] = struct{}{}
	}

	return &Repository{
		rooms:        domain.CloneRooms(seed),
		subscribers:  make(map[int]chan []domain.Room),
		readLatency:  readLatency,
		writeLatency: writeLatency,
	}, nil
}

// GetAll возвращает текущий список номеров после задержки чтения
func (r *Repository) GetAll(ctx context.Context) ([]domain.Room, error) {
	if err := wait(ctx, r.readLatency); err != nil {
		return nil, err
	}
	return r.Snapshot(), nil
}

// Snapshot возвращает копию текущего списка без задержки
func (r *Repository) Snapshot() []domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneRooms(r.rooms)
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if err := wait(ctx, r.readLatency); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			found := room
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
}

// Subscribe подписывает на изменения списка.
// Канал сразу содержит текущий список; при медленном чтении промежуточные
// значения заменяются последним. Возвращаемая функция отменяет подписку и закрывает канал.
func (r *Repository) Subscribe() (<-chan []domain.Room, func()) {
	ch := make(chan []domain.Room, 1)

	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = ch
	ch <- domain.CloneRooms(r.rooms)
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, id)
			close(ch)
			r.mu.Unlock()
		})
	}

	return ch, cancel
}

// MarkUnavailable помечает номер занятым и рассылает обновленный список.
// Текущая доступность номера не проверяется: повторное бронирование занятого
// номера успешно и ничего не меняет, кроме повторной рассылки.
func (r *Repository) MarkUnavailable(ctx context.Context, id int64) ([]domain.Room, error) {
	if err := wait(ctx, r.writeLatency); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
	}

	updated := domain.CloneRooms(r.rooms)
	updated[idx].Available = false
	r.rooms = updated

	r.publishLocked()

	return domain.CloneRooms(updated), nil
}

// publishLocked рассылает текущий список всем подписчикам. Вызывается под r.mu.
func (r *Repository) publishLocked() {
	for _, ch := range r.subscribers {
		// Выбрасываем устаревшее значение, если подписчик его еще не прочитал
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- domain.CloneRooms(r.rooms):
		default:
		}
	}
}

// wait имитирует сетевую задержку с учетом отмены контекста
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package repository

import (
	"context"
	"sync"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

// UserStore loads and overwrites the complete set of user records.
type UserStore interface {
	Load() (map[string]domain.UserRecord, error)
	Save(users map[string]domain.UserRecord) error
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.UserRecord) error
	Update(ctx context.Context, user *domain.UserRecord) error
	GetByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]domain.UserRecord
	store UserStore
}

// NewUserRepository loads the store into memory once. Every later mutation
// is flushed back through store before it returns.
func NewUserRepository(store UserStore) (UserRepository, error) {
	users, err := store.Load()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = map[string]domain.UserRecord{}
	}
	return &userRepository{users: users, store: store}, nil
}

func (r *userRepository) Exists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[email]
	return ok, nil
}

func (r *userRepository) Create(_ context.Context, user *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	r.users[user.Email] = *user
	if err := r.store.Save(r.users); err != nil {
		delete(r.users, user.Email)
		return err
	}
	return nil
}

func (r *userRepository) Update(_ context.Context, user *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.users[user.Email]
	if !ok {
		return domain.ErrUnknownUser
	}
	r.users[user.Email] = *user
	if err := r.store.Save(r.users); err != nil {
		r.users[user.Email] = prev
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUnknownUser
	}
	return &user, nil
}

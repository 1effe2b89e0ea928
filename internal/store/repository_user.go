package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// E-mails are matched case-insensitively.
type userRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]models.UserAccount
	byEmail map[string]int64
	logger  *logger.Logger
}

// NewUserRepository constructs an empty [UserRepository].
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		nextID:  1,
		byID:    make(map[int64]models.UserAccount),
		byEmail: make(map[string]int64),
		logger:  logger,
	}
}

// CreateUser assigns the next id to account and stores it.
//
// Returns [ErrEmailAlreadyExists] when the e-mail is taken.
func (r *userRepository) CreateUser(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	key := normalizeEmail(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key]; ok {
		logger.FromContext(ctx).Debug().
			Str("func", "*userRepository.CreateUser").
			Str("email", account.Email).
			Msg("email already registered")
		return models.UserAccount{}, ErrEmailAlreadyExists
	}

	account.ID = r.nextID
	r.nextID++
	r.byID[account.ID] = account
	r.byEmail[key] = account.ID

	return account, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return models.UserAccount{}, ErrNoUserWasFound
	}
	return r.byID[id], nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return models.UserAccount{}, ErrNoUserWasFound
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

type userStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserStateRepository(db *DB, logger *logger.Logger) UserStateRepository {
	return &userStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (u *userStateRepository) LoadUser(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStateQuery(userStateKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = u.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserStateNotFound
		}
		log.Err(err).Str("func", "userStateRepository.LoadUser").Msg("failed to read cached user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(value), &user); err != nil {
		log.Warn().Err(err).Str("func", "userStateRepository.LoadUser").Msg("cached user is not valid JSON")
		return models.User{}, fmt.Errorf("%w: %w", ErrCorruptUserState, err)
	}

	return user, nil
}

func (u *userStateRepository) SaveUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	query, args, err := buildUpsertStateQuery(userStateKey, string(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "userStateRepository.SaveUser").
			Int64("user_id", user.ID).
			Msg("failed to save cached user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (u *userStateRepository) DeleteUser(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStateQuery(userStateKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "userStateRepository.DeleteUser").Msg("failed to delete cached user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

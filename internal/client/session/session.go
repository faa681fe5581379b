// Package session persists the client's belief about its authentication
// state: the bearer token and the user identity record. Both survive process
// restarts via the on-device key-value store. No token validation or expiry
// tracking happens here; an invalidated token is only discovered when a
// subsequent API call fails with an authorization error.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
	"github.com/dmitrijs2005/styleoracle/internal/client/repositories/kv"
	"github.com/dmitrijs2005/styleoracle/internal/dbx"
)

const (
	keyToken = "auth_token"
	keyUser  = "user_data"
)

// Store is the session persistence contract.
//
// Token returns "" when no token is stored; User returns nil when no
// identity record is stored. Clear removes all persisted keys.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, u models.User) error
	// SetSession persists token and identity atomically, so a crash between
	// the two writes cannot leave a token without its user record.
	SetSession(ctx context.Context, token string, u models.User) error
	Clear(ctx context.Context) error
}

type kvStore struct {
	db *sql.DB
}

// NewStore returns a Store backed by the given local database.
func NewStore(db *sql.DB) Store {
	return &kvStore{db: db}
}

func (s *kvStore) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

func (s *kvStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo().Get(ctx, keyToken)
	if err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return token, nil
}

func (s *kvStore) SetToken(ctx context.Context, token string) error {
	return s.repo().Set(ctx, keyToken, token)
}

func (s *kvStore) User(ctx context.Context) (*models.User, error) {
	data, ok, err := s.repo().Get(ctx, keyUser)
	if err != nil {
		return nil, fmt.Errorf("session user: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("session user: %w", err)
	}
	return &u, nil
}

func (s *kvStore) SetUser(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session user: %w", err)
	}
	return s.repo().Set(ctx, keyUser, string(data))
}

func (s *kvStore) SetSession(ctx context.Context, token string, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, string(data))
	})
}

func (s *kvStore) Clear(ctx context.Context) error {
	return s.repo().Clear(ctx)
}

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/cryptox"
	"github.com/dmitrijs2005/contactdesk/internal/dbx"
)

// ErrLocked is returned when a stored value is sealed and the store has no
// sealer to open it.
var ErrLocked = errors.New("stored credential is encrypted, storage key required")

// LocalStore keeps the credential in the local SQLite database so it
// survives restarts. With a sealer, values are encrypted before they are
// written; plain values left from earlier runs are still read.
type LocalStore struct {
	db     *sql.DB
	sealer *cryptox.Sealer
}

type LocalOption func(*LocalStore)

func WithSealer(s *cryptox.Sealer) LocalOption {
	return func(ls *LocalStore) { ls.sealer = s }
}

func NewLocalStore(db *sql.DB, opts ...LocalOption) *LocalStore {
	s := &LocalStore{db: db}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OpenSealer builds a sealer from passphrase and the salt kept in local
// storage, creating the salt on first use.
func OpenSealer(ctx context.Context, db *sql.DB, passphrase []byte) (*cryptox.Sealer, error) {
	var salt []byte
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstorage.NewSQLiteRepository(tx)
		v, ok, err := repo.GetItem(ctx, common.StorageSaltKey)
		if err != nil {
			return err
		}
		if ok && v != "" {
			salt = []byte(v)
			return nil
		}
		raw, err := cryptox.NewSalt()
		if err != nil {
			return err
		}
		salt = []byte(fmt.Sprintf("%x", raw))
		return repo.SetItem(ctx, common.StorageSaltKey, string(salt))
	})
	if err != nil {
		return nil, err
	}
	return cryptox.NewSealer(passphrase, salt)
}

func (s *LocalStore) seal(v string) (string, error) {
	if s.sealer == nil || v == "" {
		return v, nil
	}
	return s.sealer.Seal(v)
}

func (s *LocalStore) open(v string) (string, error) {
	if !cryptox.IsSealed(v) {
		return v, nil
	}
	if s.sealer == nil {
		return "", ErrLocked
	}
	return s.sealer.Open(v)
}

func (s *LocalStore) put(ctx context.Context, repo *localstorage.SQLiteRepository, key, value string) error {
	v, err := s.seal(value)
	if err != nil {
		return err
	}
	return repo.SetItem(ctx, key, v)
}

func (s *LocalStore) get(ctx context.Context, repo *localstorage.SQLiteRepository, key string) (string, error) {
	v, _, err := repo.GetItem(ctx, key)
	if err != nil {
		return "", err
	}
	return s.open(v)
}

func (s *LocalStore) Current(ctx context.Context) (Credential, bool, error) {
	repo := localstorage.NewSQLiteRepository(s.db)

	access, err := s.get(ctx, repo, common.AccessTokenKey)
	if err != nil {
		return Credential{}, false, err
	}
	if access == "" {
		return Credential{}, false, nil
	}

	refresh, err := s.get(ctx, repo, common.RefreshTokenKey)
	if err != nil {
		return Credential{}, false, err
	}
	return Credential{Access: access, Refresh: refresh}, true, nil
}

func (s *LocalStore) AccessToken(ctx context.Context) (string, bool, error) {
	access, err := s.get(ctx, localstorage.NewSQLiteRepository(s.db), common.AccessTokenKey)
	if err != nil {
		return "", false, err
	}
	return access, access != "", nil
}

func (s *LocalStore) Set(ctx context.Context, cred Credential) error {
	if cred.Access == "" {
		return ErrEmptyCredential
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstorage.NewSQLiteRepository(tx)
		if err := s.put(ctx, repo, common.AccessTokenKey, cred.Access); err != nil {
			return err
		}
		return s.put(ctx, repo, common.RefreshTokenKey, cred.Refresh)
	})
}

func (s *LocalStore) SetAccess(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyCredential
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstorage.NewSQLiteRepository(tx)
		if err := s.put(ctx, repo, common.LegacyAuthTokenKey, token); err != nil {
			return err
		}

		access, _, err := repo.GetItem(ctx, common.AccessTokenKey)
		if err != nil {
			return err
		}
		if access != "" {
			return nil
		}
		if err := s.put(ctx, repo, common.AccessTokenKey, token); err != nil {
			return err
		}
		// A leftover refresh value would pair with the wrong access value.
		return repo.RemoveItem(ctx, common.RefreshTokenKey)
	})
}

func (s *LocalStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstorage.NewSQLiteRepository(tx)
		for _, k := range []string{common.AccessTokenKey, common.RefreshTokenKey, common.LegacyAuthTokenKey} {
			if err := repo.RemoveItem(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Package localstore keeps device-local state (the login session) in an embedded BadgerDB.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/dgraph-io/badger/v4"
)

// SessionKey is the well-known key the single device session is stored under.
const SessionKey = "user_session"

// Config holds configuration for the local BadgerDB.
type Config struct {
	// Path is the data directory. Ignored when InMemory is true.
	Path string
	// InMemory disables disk persistence (tests).
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger routes BadgerDB warnings and errors through the standard logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[localstore][badger] error: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	log.Printf("[localstore][badger] warning: "+format, args...)
}

func (badgerLogger) Infof(string, ...interface{})  {}
func (badgerLogger) Debugf(string, ...interface{}) {}

func Open(cfg Config) (*badger.DB, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent local store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create local store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return db, nil
}

type sessionRecord struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	LoginTime time.Time `json:"loginTime"`
}

// SessionStorage stores the single session record under SessionKey.
type SessionStorage struct {
	db *badger.DB
}

var _ interfaces.ISessionStorage = (*SessionStorage)(nil)

func NewSessionStorage(db *badger.DB) *SessionStorage {
	return &SessionStorage{db: db}
}

func (s *SessionStorage) Save(ctx context.Context, sess entities.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(sessionRecord{
		Token:     sess.Token,
		Email:     sess.Identity.Email,
		Name:      sess.Identity.Name,
		Phone:     sess.Identity.Phone,
		LoginTime: sess.Identity.LoginTime.UTC(),
	})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(SessionKey), raw)
	})
}

func (s *SessionStorage) Load(ctx context.Context) (entities.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.Session{}, false, err
	}
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SessionKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entities.Session{}, false, nil
	}
	if err != nil {
		return entities.Session{}, false, err
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Printf("[session][localstore] discarding unreadable session record err=%v", err)
		return entities.Session{}, false, nil
	}
	return entities.Session{
		Token: rec.Token,
		Identity: entities.Identity{
			Email:     rec.Email,
			Name:      rec.Name,
			Phone:     rec.Phone,
			LoginTime: rec.LoginTime,
		},
	}, true, nil
}

func (s *SessionStorage) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(SessionKey))
	})
}

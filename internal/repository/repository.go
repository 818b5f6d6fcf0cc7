// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/database"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/models"
)

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Repository stores records of one kind keyed by id. List returns records in
// insertion order; Put on an existing id replaces the record in place.
type Repository[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, record T) error
	List(ctx context.Context) ([]T, error)
}

type CandidateRepository = Repository[models.Candidate]

type InternshipRepository = Repository[models.Internship]

const (
	candidateKind  = "candidate"
	internshipKind = "internship"
)

func candidateID(c models.Candidate) string { return c.ID }

func internshipID(i models.Internship) string { return i.ID }

// Store bundles the repositories backing one storage driver.
type Store struct {
	Candidates  CandidateRepository
	Internships InternshipRepository
	Driver      string

	ping  func(ctx context.Context) error
	close func() error
}

// NewMemoryStore returns a Store that keeps everything in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Candidates:  NewMemory(candidateID),
		Internships: NewMemory(internshipID),
		Driver:      config.DriverMemory,
	}
}

// Open connects the driver selected by storage.driver.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		return NewMemoryStore(), nil

	case config.DriverRedis:
		client, err := database.ConnectRedis(ctx, cfg.Database.Redis, database.RedisBackoff, log)
		if err != nil {
			return nil, err
		}
		prefix := cfg.Database.Redis.KeyPrefix
		return &Store{
			Candidates:  NewRedis(client.Client, prefix, candidateKind, candidateID),
			Internships: NewRedis(client.Client, prefix, internshipKind, internshipID),
			Driver:      config.DriverRedis,
			ping:        client.Ping,
			close:       client.Close,
		}, nil

	case config.DriverPostgres:
		client, err := database.ConnectPostgres(ctx, cfg.Database.Postgres, database.PostgresBackoff, log)
		if err != nil {
			return nil, err
		}
		if err := EnsureSchema(ctx, client.DB); err != nil {
			client.Close()
			return nil, err
		}
		return &Store{
			Candidates:  NewPostgres(client.DB, candidateKind, candidateID),
			Internships: NewPostgres(client.DB, internshipKind, internshipID),
			Driver:      config.DriverPostgres,
			ping:        client.Ping,
			close:       client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Ping checks the backing connection. The memory driver is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the driver's connections.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

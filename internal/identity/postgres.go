package identity

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// ProfileStore reads and writes the profiles table directly over postgres,
// for deployments where the identity endpoint's database is reachable.
type ProfileStore struct {
	db *sql.DB
}

// OpenProfileStore connects to the given postgres endpoint.
func OpenProfileStore(connStr string) (*ProfileStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	return &ProfileStore{db: db}, nil
}

func (s *ProfileStore) ProfileByID(ctx context.Context, id string) (models.Profile, error) {
	var profile models.Profile
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, full_name FROM profiles WHERE id = $1`, id)
	if err := row.Scan(&profile.ID, &profile.Email, &profile.FullName); err != nil {
		if err == sql.ErrNoRows {
			return profile, ErrProfileNotFound
		}
		return profile, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileStore) InsertProfile(ctx context.Context, profile models.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, full_name) VALUES ($1, $2, $3)`,
		profile.ID, profile.Email, profile.FullName)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) DeleteProfile(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) Close() error {
	return s.db.Close()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

// CreatePlaylistIfAbsent создаёт плейлист владельца с указанным именем.
// Если такой уже есть, возвращает существующий и created=false.
func (s *Storage) CreatePlaylistIfAbsent(ctx context.Context, owner, name, description string) (*models.Playlist, bool, error) {
	const op = "storage.CreatePlaylistIfAbsent"
	if err := ctxErr(ctx, op); err != nil {
		return nil, false, err
	}

	p := &models.Playlist{}
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO playlists (owner, name, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (owner, name) DO NOTHING
		 RETURNING id, owner, name, description, created_at`,
		owner, name, description).Scan(&p.ID, &p.Owner, &p.Name, &p.Description, &p.CreatedAt)
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT id, owner, name, description, created_at FROM playlists WHERE owner = $1 AND name = $2`,
		owner, name).Scan(&p.ID, &p.Owner, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return p, false, nil
}

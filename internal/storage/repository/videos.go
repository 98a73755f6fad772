package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

// AppendWatchHistory добавляет видео в конец истории просмотров пользователя.
// Повторный просмотр переносит видео в конец, не создавая дубля.
func (s *Storage) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	const op = "storage.AppendWatchHistory"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO watch_history (user_id, video_id)
			  SELECT $1, v.id FROM videos v WHERE v.id = $2
			  ON CONFLICT (user_id, video_id) DO UPDATE
			  SET seq = nextval(pg_get_serial_sequence('watch_history', 'seq')),
			      watched_at = NOW()`
	res, err := s.DB.ExecContext(ctx, query, userID, videoID)
	return affectedOne(op, res, err)
}

// WatchHistoryVideos возвращает видео из истории в порядке просмотра вместе с проекцией владельца.
// Записи, для которых видео не найдено, пропускаются.
func (s *Storage) WatchHistoryVideos(ctx context.Context, userID string) ([]models.Video, error) {
	const op = "storage.WatchHistoryVideos"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT v.id, v.video_file, v.thumbnail, v.title, v.description, v.duration,
			         v.views, v.is_published, v.created_at, o.fullname, o.username, o.avatar
			  FROM watch_history w
			  JOIN videos v ON v.id = w.video_id
			  LEFT JOIN users o ON o.id = v.owner
			  WHERE w.user_id = $1
			  ORDER BY w.seq`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []models.Video{}
	for rows.Next() {
		var (
			v                          models.Video
			fullname, username, avatar sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.VideoFile, &v.Thumbnail, &v.Title, &v.Description, &v.Duration,
			&v.Views, &v.IsPublished, &v.CreatedAt, &fullname, &username, &avatar); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if username.Valid {
			v.Owner = &models.VideoOwner{
				Fullname: fullname.String,
				Username: username.String,
				Avatar:   avatar.String,
			}
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

package models

import "time"

// VideoOwner — проекция владельца видео.
type VideoOwner struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Video — запись видео, принадлежащая внешнему сервису. Ядро её только читает.
type Video struct {
	ID          string      `json:"_id"`
	VideoFile   string      `json:"videoFile"`
	Thumbnail   string      `json:"thumbnail"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    float64     `json:"duration"`
	Views       int64       `json:"views"`
	IsPublished bool        `json:"isPublished"`
	Owner       *VideoOwner `json:"owner"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Playlist — коллекция видео пользователя.
type Playlist struct {
	ID          string    `json:"_id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Плейлист, который создаётся каждому новому пользователю.
const (
	WatchLaterName        = "Watch Later"
	WatchLaterDescription = "System-managed list for later viewing. (Do Not Delete)"
)

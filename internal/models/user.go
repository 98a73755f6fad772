// Package models содержит доменные структуры сервиса: пользователя, ребро подписки,
// проекции для ответов и внешние сущности (видео, плейлисты), которые ядро только читает.
package models

import "time"

// User представляет зарегистрированного пользователя. Канал — тот же пользователь
// в роли цели подписки, отдельной сущности нет.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"` // всегда в нижнем регистре
	Email        string    `json:"email"`
	Fullname     string    `json:"fullname"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	RefreshToken string    `json:"-"` // единственный действующий refresh-токен
	WatchHistory []string  `json:"watchHistory"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser — проекция пользователя без пароля и refresh-токена.
type PublicUser struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Fullname     string    `json:"fullname"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	WatchHistory []string  `json:"watchHistory"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Public возвращает публичную проекцию пользователя.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	history := u.WatchHistory
	if history == nil {
		history = []string{}
	}
	return &PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Fullname:     u.Fullname,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ProfileRef — краткий профиль, подставляемый при join рёбер подписки.
type ProfileRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ChannelProfile — публичный профиль канала с вычисленными метриками.
type ChannelProfile struct {
	ID                        string `json:"_id"`
	Username                  string `json:"username"`
	Fullname                  string `json:"fullname"`
	Email                     string `json:"email"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int    `json:"subscribersCount"`
	ChannelsSubscribedToCount int    `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}

// ChannelCounts — агрегаты канала, которые можно кэшировать.
// Признак IsSubscribed зависит от запрашивающего и сюда не входит.
type ChannelCounts struct {
	SubscribersCount          int `json:"subscribersCount"`
	ChannelsSubscribedToCount int `json:"channelsSubscribedToCount"`
}

// UserRegisteredEvent публикуется после создания пользователя.
type UserRegisteredEvent struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurredAt"`
}

package models

import "time"

// Subscription — направленное ребро subscriber -> channel.
// Наличие ребра и есть признак подписки: отдельного флага нет.
type Subscription struct {
	ID         string    `json:"_id"`
	Subscriber string    `json:"subscriber"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SubscriberEntry — ребро с профилем подписчика.
type SubscriberEntry struct {
	ID         string     `json:"_id"`
	Subscriber ProfileRef `json:"subscriber"`
	Channel    string     `json:"channel"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SubscribedChannelEntry — ребро с профилем канала.
type SubscribedChannelEntry struct {
	ID        string     `json:"_id"`
	Channel   ProfileRef `json:"channel"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToggleState — состояние ребра после переключения.
type ToggleState int

// Состояния ребра.
const (
	Absent ToggleState = iota
	Present
)

func (s ToggleState) String() string {
	if s == Present {
		return "present"
	}
	return "absent"
}

// ToggleResult — результат атомарного переключения ребра в хранилище.
// Subscription заполнено только для Present.
type ToggleResult struct {
	State        ToggleState
	Subscription *Subscription
}

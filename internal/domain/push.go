package domain

import "time"

type PushSubscription struct {
	ID        uint      `json:"id"`
	MemberID  uint      `json:"member_id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}

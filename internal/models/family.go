package models

import "time"

type Family struct {
	FamilyID     string    `json:"family_id"`
	Name         string    `json:"name"`
	DigestChatID *int64    `json:"digest_chat_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type FamilyMember struct {
	FamilyID    string    `json:"family_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

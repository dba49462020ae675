package models

import "time"

type Account struct {
	BaseModel

	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
}

type AuthSession struct {
	BaseModel

	ExpiredAt time.Time `json:"expired_at" gorm:"index"`
	AccountID string    `json:"account_id" gorm:"index"`
	Account   Account   `json:"account"`
}

package domain

import "time"

type User struct {
	ID          int32     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	NIM         string    `json:"nim"`
	Faculty     string    `json:"faculty"`
	Program     string    `json:"program"`
	DeviceToken string    `json:"-"` // FCM registration token, empty when the user has no device
	CreatedOn   time.Time `json:"created_on"`
}

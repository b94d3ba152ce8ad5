package domain

import "time"

// Organization is a student activity unit (UKM).
type Organization struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AdminUserID int32     `json:"admin_user_id"`
	AdminEmail  string    `json:"admin_email"`
	CreatedOn   time.Time `json:"created_on"`
	MemberCount int32     `json:"member_count"`
}

package models

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleUser       = "USER"
	RoleStudent    = "STUDENT"
	RoleTutor      = "TUTOR"
)

const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
)

type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	ProfileImage string `json:"profile_image,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// UserUpdate carries PATCH-style partial updates; nil means "leave as is".
type UserUpdate struct {
	FullName     *string `json:"full_name"`
	Role         *string `json:"role"`
	Status       *string `json:"status"`
	ProfileImage *string `json:"profile_image"`
}

type UserFilter struct {
	SearchTerm string
	Role       string
	Status     string
}

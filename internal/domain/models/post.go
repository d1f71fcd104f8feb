package models

type Post struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	EventID   int64   `json:"event_id"`
	Content   string  `json:"content"`
	Image     string  `json:"image,omitempty"`
	Likes     []int64 `json:"likes"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type PostUpdate struct {
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

type PostFilter struct {
	EventID    int64
	UserID     int64
	SearchTerm string
}

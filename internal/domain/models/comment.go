package models

type Comment struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	PostID    int64  `json:"post_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CommentUpdate struct {
	Content *string `json:"content"`
}

type CommentFilter struct {
	PostID     int64
	UserID     int64
	SearchTerm string
}

package models

type Blog struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type BlogUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

type BlogFilter struct {
	EventID    int64
	SearchTerm string
}

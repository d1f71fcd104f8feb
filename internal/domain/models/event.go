package models

type EventCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type EventCategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type Event struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Capacity        int      `json:"capacity"`
	Price           float64  `json:"price"`
	EventCategoryID int64    `json:"event_category_id"`
	EventDate       string   `json:"event_date,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	Location        string   `json:"location,omitempty"`
	Images          []string `json:"images"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

type EventUpdate struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Capacity        *int      `json:"capacity"`
	Price           *float64  `json:"price"`
	EventCategoryID *int64    `json:"event_category_id"`
	EventDate       *string   `json:"event_date"`
	StartTime       *string   `json:"start_time"`
	EndTime         *string   `json:"end_time"`
	Location        *string   `json:"location"`
	Images          *[]string `json:"images"`
}

// EventFilter is the allow-listed subset of list query parameters.
type EventFilter struct {
	SearchTerm  string
	CategoryIDs []int64
	Date        string
	MinPrice    *float64
	MaxPrice    *float64
}

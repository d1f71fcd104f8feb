package models

const (
	FileTypeImage    = "IMAGE"
	FileTypeVideo    = "VIDEO"
	FileTypeDocument = "DOCUMENT"
)

type File struct {
	ID        int64  `json:"id"`
	FileType  string `json:"file_type"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type FileUpdate struct {
	FileType *string `json:"file_type"`
	AltText  *string `json:"alt_text"`
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/storage"
	"eventhub/internal/utils"
)

type FileService struct {
	FileRepo  repositories.FileRepo
	Storage   storage.Storage
	RequestID string
}

// UploadFiles pushes every part to object storage and persists one row per
// uploaded blob.
func (s FileService) UploadFiles(ctx context.Context, fileType, altText string, files []*multipart.FileHeader) ([]models.File, error) {
	if len(files) == 0 {
		return nil, domain.ValidationError{Field: "files", Msg: "at least one file is required"}
	}
	if !validFileType(fileType) {
		return nil, domain.ValidationError{Field: "file_type", Msg: "unknown file type"}
	}
	if s.Storage == nil {
		return nil, domain.InternalError{Msg: "object storage is not configured"}
	}

	created := []models.File{}
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}

		url, err := s.Storage.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			return nil, domain.InternalError{Msg: "file upload failed", Err: err}
		}

		file := models.File{FileType: fileType, URL: url, AltText: altText}
		id, err := s.FileRepo.Create(file)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		file.ID = id
		created = append(created, file)
	}

	utils.LogEvent(s.RequestID, "files", "upload", "count="+strconv.Itoa(len(created)))
	return created, nil
}

func (s FileService) ListFiles(p utils.Pagination) ([]models.File, int, error) {
	list, total, err := s.FileRepo.List(p.Limit, p.Skip)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	return list, total, nil
}

func (s FileService) GetFile(id int64) (models.File, error) {
	file, err := s.FileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, domain.NotFoundError{Resource: "file"}
		}
		return models.File{}, domain.InternalError{Err: err}
	}
	return file, nil
}

// UpdateFile optionally replaces the blob; the old one is deleted only after
// the new upload succeeded.
func (s FileService) UpdateFile(ctx context.Context, id int64, replacement *multipart.FileHeader, upd models.FileUpdate) (models.File, error) {
	existing, err := s.GetFile(id)
	if err != nil {
		return models.File{}, err
	}

	newURL := ""
	if replacement != nil {
		if s.Storage == nil {
			return models.File{}, domain.InternalError{Msg: "object storage is not configured"}
		}
		src, err := replacement.Open()
		if err != nil {
			return models.File{}, domain.InternalError{Err: err}
		}
		newURL, err = s.Storage.Upload(ctx, replacement.Filename, replacement.Header.Get("Content-Type"), src, replacement.Size)
		src.Close()
		if err != nil {
			return models.File{}, domain.InternalError{Msg: "file upload failed", Err: err}
		}

		if err := s.Storage.Delete(ctx, existing.URL); err != nil {
			utils.LogEvent(s.RequestID, "files", "update", "old blob cleanup failed: "+err.Error())
		}
	}

	if err := s.FileRepo.Update(id, newURL, upd); err != nil {
		return models.File{}, domain.InternalError{Err: err}
	}
	return s.GetFile(id)
}

func (s FileService) DeleteFile(ctx context.Context, id int64) error {
	existing, err := s.GetFile(id)
	if err != nil {
		return err
	}

	if s.Storage != nil {
		if err := s.Storage.Delete(ctx, existing.URL); err != nil {
			utils.LogEvent(s.RequestID, "files", "delete", "blob cleanup failed: "+err.Error())
		}
	}

	if err := s.FileRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func validFileType(t string) bool {
	switch strings.ToUpper(t) {
	case models.FileTypeImage, models.FileTypeVideo, models.FileTypeDocument:
		return true
	}
	return false
}

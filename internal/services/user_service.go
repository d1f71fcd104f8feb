package services

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/storage"
	"eventhub/internal/utils"
)

type UserService struct {
	UserRepo  repositories.UserRepo
	Storage   storage.Storage
	RequestID string
}

func (s UserService) ListUsers(f models.UserFilter, p utils.Pagination) ([]models.User, int, error) {
	list, total, err := s.UserRepo.List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "users"}
	}
	return list, total, nil
}

func (s UserService) GetUser(id int64) (models.User, error) {
	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return user, nil
}

func (s UserService) UpdateUser(id int64, upd models.UserUpdate) (models.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return models.User{}, err
	}
	if err := s.UserRepo.Update(id, upd); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return s.GetUser(id)
}

// DeleteUser cleans up the profile image blob before removing the row.
func (s UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if s.Storage != nil && user.ProfileImage != "" {
		if err := s.Storage.Delete(ctx, user.ProfileImage); err != nil {
			utils.LogEvent(s.RequestID, "user", "delete", "profile image cleanup failed: "+err.Error())
		}
	}

	if err := s.UserRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

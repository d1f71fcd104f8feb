package services

import (
	"database/sql"
	"errors"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"
)

type CategoryService struct {
	CategoryRepo repositories.CategoryRepo
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s CategoryService) CreateCategory(input CreateCategoryInput) (models.EventCategory, error) {
	if _, err := s.CategoryRepo.FindByName(input.Name); err == nil {
		return models.EventCategory{}, domain.ConflictError{
			Resource: "event category",
			Msg:      "event category already exists with this name",
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.EventCategory{}, domain.InternalError{Err: err}
	}

	cat := models.EventCategory{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	id, err := s.CategoryRepo.Create(cat)
	if err != nil {
		return models.EventCategory{}, domain.InternalError{Err: err}
	}
	cat.ID = id
	return cat, nil
}

func (s CategoryService) ListCategories(searchTerm string, p utils.Pagination) ([]models.EventCategory, int, error) {
	list, total, err := s.CategoryRepo.List(searchTerm, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "event categories"}
	}
	return list, total, nil
}

func (s CategoryService) GetCategory(id int64) (models.EventCategory, error) {
	cat, err := s.CategoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EventCategory{}, domain.NotFoundError{Resource: "event category"}
		}
		return models.EventCategory{}, domain.InternalError{Err: err}
	}
	return cat, nil
}

func (s CategoryService) UpdateCategory(id int64, upd models.EventCategoryUpdate) (models.EventCategory, error) {
	if _, err := s.GetCategory(id); err != nil {
		return models.EventCategory{}, err
	}

	if upd.Name != nil {
		existing, err := s.CategoryRepo.FindByName(*upd.Name)
		if err == nil && existing.ID != id {
			return models.EventCategory{}, domain.ConflictError{
				Resource: "event category",
				Msg:      "event category name already exists",
			}
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return models.EventCategory{}, domain.InternalError{Err: err}
		}
	}

	if err := s.CategoryRepo.Update(id, upd); err != nil {
		return models.EventCategory{}, domain.InternalError{Err: err}
	}
	return s.GetCategory(id)
}

func (s CategoryService) DeleteCategory(id int64) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	if err := s.CategoryRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

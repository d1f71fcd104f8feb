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

type BlogService struct {
	BlogRepo repositories.BlogRepo
}

type CreateBlogInput struct {
	EventID int64  `json:"event_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

func (s BlogService) CreateBlog(input CreateBlogInput) (models.Blog, error) {
	if _, err := s.BlogRepo.FindByTitle(input.Title); err == nil {
		return models.Blog{}, domain.ConflictError{Resource: "blog", Msg: "blog exists with this title"}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, domain.InternalError{Err: err}
	}

	blog := models.Blog{
		EventID: input.EventID,
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Image:   input.Image,
	}
	id, err := s.BlogRepo.Create(blog)
	if err != nil {
		return models.Blog{}, domain.InternalError{Err: err}
	}
	blog.ID = id
	return blog, nil
}

func (s BlogService) ListBlogs(f models.BlogFilter, p utils.Pagination) ([]models.Blog, int, error) {
	list, total, err := s.BlogRepo.List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "blogs"}
	}
	return list, total, nil
}

func (s BlogService) GetBlog(id int64) (models.Blog, error) {
	blog, err := s.BlogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, domain.NotFoundError{Resource: "blog"}
		}
		return models.Blog{}, domain.InternalError{Err: err}
	}
	return blog, nil
}

func (s BlogService) UpdateBlog(id int64, upd models.BlogUpdate) (models.Blog, error) {
	if _, err := s.GetBlog(id); err != nil {
		return models.Blog{}, err
	}
	if err := s.BlogRepo.Update(id, upd); err != nil {
		return models.Blog{}, domain.InternalError{Err: err}
	}
	return s.GetBlog(id)
}

func (s BlogService) DeleteBlog(id int64) error {
	if _, err := s.GetBlog(id); err != nil {
		return err
	}
	if err := s.BlogRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

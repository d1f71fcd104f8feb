package services

import (
	"database/sql"
	"errors"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"
)

type CommentService struct {
	CommentRepo repositories.CommentRepo
}

type CreateCommentInput struct {
	PostID  int64  `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s CommentService) CreateComment(userID int64, input CreateCommentInput) (models.Comment, error) {
	cm := models.Comment{
		UserID:  userID,
		PostID:  input.PostID,
		Content: input.Content,
	}
	id, err := s.CommentRepo.Create(cm)
	if err != nil {
		return models.Comment{}, domain.InternalError{Err: err}
	}
	cm.ID = id
	return cm, nil
}

func (s CommentService) ListComments(f models.CommentFilter, p utils.Pagination) ([]models.Comment, int, error) {
	list, total, err := s.CommentRepo.List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "comments"}
	}
	return list, total, nil
}

func (s CommentService) GetComment(id int64) (models.Comment, error) {
	cm, err := s.CommentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, domain.NotFoundError{Resource: "comment"}
		}
		return models.Comment{}, domain.InternalError{Err: err}
	}
	return cm, nil
}

func (s CommentService) UpdateComment(id int64, upd models.CommentUpdate) (models.Comment, error) {
	if _, err := s.GetComment(id); err != nil {
		return models.Comment{}, err
	}
	if err := s.CommentRepo.Update(id, upd); err != nil {
		return models.Comment{}, domain.InternalError{Err: err}
	}
	return s.GetComment(id)
}

func (s CommentService) DeleteComment(id int64) error {
	if _, err := s.GetComment(id); err != nil {
		return err
	}
	if err := s.CommentRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

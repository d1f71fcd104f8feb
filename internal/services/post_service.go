package services

import (
	"database/sql"
	"errors"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"
)

type PostService struct {
	PostRepo repositories.PostRepo
}

type CreatePostInput struct {
	EventID int64  `json:"event_id" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

func (s PostService) CreatePost(userID int64, input CreatePostInput) (models.Post, error) {
	post := models.Post{
		UserID:  userID,
		EventID: input.EventID,
		Content: input.Content,
		Image:   input.Image,
		Likes:   []int64{},
	}
	id, err := s.PostRepo.Create(post)
	if err != nil {
		return models.Post{}, domain.InternalError{Err: err}
	}
	post.ID = id
	return post, nil
}

func (s PostService) ListPosts(f models.PostFilter, p utils.Pagination) ([]models.Post, int, error) {
	list, total, err := s.PostRepo.List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "posts"}
	}
	return list, total, nil
}

// MyPosts lists the caller's posts; an empty page is not an error here.
func (s PostService) MyPosts(userID int64, p utils.Pagination) ([]models.Post, int, error) {
	list, total, err := s.PostRepo.List(models.PostFilter{UserID: userID}, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	return list, total, nil
}

func (s PostService) GetPost(id int64) (models.Post, error) {
	post, err := s.PostRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, domain.NotFoundError{Resource: "post"}
		}
		return models.Post{}, domain.InternalError{Err: err}
	}
	return post, nil
}

func (s PostService) UpdatePost(id int64, upd models.PostUpdate) (models.Post, error) {
	if _, err := s.GetPost(id); err != nil {
		return models.Post{}, err
	}
	if err := s.PostRepo.Update(id, upd); err != nil {
		return models.Post{}, domain.InternalError{Err: err}
	}
	return s.GetPost(id)
}

func (s PostService) DeletePost(id int64) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	if err := s.PostRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// LikeUnlikePost toggles the user's membership in the post's likes set. The
// insert-then-delete pair keys on the unique (post, user) row, so the toggle
// is atomic at the storage layer.
func (s PostService) LikeUnlikePost(postID, userID int64) (models.Post, error) {
	if _, err := s.GetPost(postID); err != nil {
		return models.Post{}, err
	}

	added, err := s.PostRepo.Like(postID, userID)
	if err != nil {
		return models.Post{}, domain.InternalError{Err: err}
	}
	if !added {
		if _, err := s.PostRepo.Unlike(postID, userID); err != nil {
			return models.Post{}, domain.InternalError{Err: err}
		}
	}

	return s.GetPost(postID)
}

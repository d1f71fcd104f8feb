package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/storage"
	"eventhub/internal/utils"
)

type EventService struct {
	EventRepo    repositories.EventRepo
	CategoryRepo repositories.CategoryRepo
	Storage      storage.Storage
	RequestID    string
}

type CreateEventInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity" binding:"required,gte=0"`
	Price           float64  `json:"price"`
	EventCategoryID int64    `json:"event_category_id" binding:"required"`
	EventDate       string   `json:"event_date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Location        string   `json:"location"`
	Images          []string `json:"images"`
}

func (s EventService) CreateEvent(input CreateEventInput) (models.Event, error) {
	if _, err := s.CategoryRepo.GetByID(input.EventCategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, domain.NotFoundError{Resource: "event category"}
		}
		return models.Event{}, domain.InternalError{Err: err}
	}

	ev := models.Event{
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Capacity:        input.Capacity,
		Price:           input.Price,
		EventCategoryID: input.EventCategoryID,
		EventDate:       input.EventDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Location:        input.Location,
		Images:          input.Images,
	}

	id, err := s.EventRepo.Create(ev)
	if err != nil {
		return models.Event{}, domain.InternalError{Err: err}
	}
	ev.ID = id
	return ev, nil
}

func (s EventService) ListEvents(f models.EventFilter, p utils.Pagination) ([]models.Event, int, error) {
	list, total, err := s.EventRepo.List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "events"}
	}
	return list, total, nil
}

func (s EventService) GetEvent(id int64) (models.Event, error) {
	ev, err := s.EventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, domain.NotFoundError{Resource: "event"}
		}
		return models.Event{}, domain.InternalError{Err: err}
	}
	return ev, nil
}

func (s EventService) UpdateEvent(id int64, upd models.EventUpdate) (models.Event, error) {
	if _, err := s.GetEvent(id); err != nil {
		return models.Event{}, err
	}
	if err := s.EventRepo.Update(id, upd); err != nil {
		return models.Event{}, domain.InternalError{Err: err}
	}
	return s.GetEvent(id)
}

// DeleteEvent removes the event's stored images before the row itself.
func (s EventService) DeleteEvent(ctx context.Context, id int64) error {
	ev, err := s.GetEvent(id)
	if err != nil {
		return err
	}

	if s.Storage != nil {
		for _, image := range ev.Images {
			if err := s.Storage.Delete(ctx, image); err != nil {
				utils.LogEvent(s.RequestID, "event", "delete", "image cleanup failed: "+err.Error())
			}
		}
	}

	if err := s.EventRepo.Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

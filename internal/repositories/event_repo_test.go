package repositories

import (
	"testing"

	"eventhub/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newEventRepo(t *testing.T) (EventRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return EventRepo{DB: db}, mock
}

func eventRows(id int64, title string, capacity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "capacity", "price", "event_category_id",
		"event_date", "start_time", "end_time", "location", "images",
		"created_at", "updated_at",
	}).AddRow(id, title, "", capacity, 25.0, 1, "2026-09-12", "18:00", "21:00",
		"Main Hall", `["https://cdn/img1.png"]`, "2026-01-01 10:00:00", "2026-01-01 10:00:00")
}

func TestEventGetByIDDecodesImages(t *testing.T) {
	repo, mock := newEventRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM events WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(eventRows(1, "Go Conf", 10))

	ev, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("get event error: %v", err)
	}
	if len(ev.Images) != 1 || ev.Images[0] != "https://cdn/img1.png" {
		t.Fatalf("expected decoded images, got %v", ev.Images)
	}
}

func TestEventListFilters(t *testing.T) {
	repo, mock := newEventRepo(t)

	min := 10.0
	f := models.EventFilter{
		SearchTerm:  "conf",
		CategoryIDs: []int64{1, 2},
		MinPrice:    &min,
	}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM events WHERE title LIKE \\? AND event_category_id IN \\(\\?,\\?\\) AND price >= \\?").
		WithArgs("%conf%", int64(1), int64(2), 10.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM events WHERE title LIKE").
		WithArgs("%conf%", int64(1), int64(2), 10.0, 20, 0).
		WillReturnRows(eventRows(1, "Go Conf", 10))

	list, total, err := repo.List(f, 20, 0, "created_at", "DESC")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("expected one event, got total=%d len=%d", total, len(list))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReserveCapacityTx(t *testing.T) {
	repo, mock := newEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(9, int64(1), 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := repo.DB.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}

	ok, err := repo.ReserveCapacityTx(tx, 1, 2)
	if err != nil || !ok {
		t.Fatalf("expected successful reservation, got ok=%v err=%v", ok, err)
	}

	ok, err = repo.ReserveCapacityTx(tx, 1, 9)
	if err != nil {
		t.Fatalf("reserve error: %v", err)
	}
	if ok {
		t.Fatal("reservation must fail when remaining capacity is below qty")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

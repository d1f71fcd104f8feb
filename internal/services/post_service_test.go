package services

import (
	"testing"

	"eventhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectPostFetch(mock sqlmock.Sqlmock, postID int64, likes ...int64) {
	mock.ExpectQuery("SELECT (.+) FROM posts WHERE id=").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "event_id", "content", "image", "created_at", "updated_at",
		}).AddRow(postID, 3, 1, "great show", "", "2026-01-01 10:00:00", "2026-01-01 10:00:00"))

	likeRows := sqlmock.NewRows([]string{"user_id"})
	for _, uid := range likes {
		likeRows.AddRow(uid)
	}
	mock.ExpectQuery("SELECT user_id FROM post_likes").
		WithArgs(postID).
		WillReturnRows(likeRows)
}

// Toggling twice must land back on the starting likes set.
func TestLikeUnlikePostDoubleToggle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := PostService{PostRepo: repositories.PostRepo{DB: db}}

	// First toggle: user 5 is not in the set yet, the insert adds them.
	expectPostFetch(mock, 1)
	mock.ExpectExec("INSERT IGNORE INTO post_likes").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	expectPostFetch(mock, 1, 5)

	post, err := svc.LikeUnlikePost(1, 5)
	if err != nil {
		t.Fatalf("first toggle error: %v", err)
	}
	if len(post.Likes) != 1 || post.Likes[0] != 5 {
		t.Fatalf("expected likes [5], got %v", post.Likes)
	}

	// Second toggle: the insert is a no-op, so the row is deleted instead.
	expectPostFetch(mock, 1, 5)
	mock.ExpectExec("INSERT IGNORE INTO post_likes").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM post_likes").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectPostFetch(mock, 1)

	post, err = svc.LikeUnlikePost(1, 5)
	if err != nil {
		t.Fatalf("second toggle error: %v", err)
	}
	if len(post.Likes) != 0 {
		t.Fatalf("expected empty likes set, got %v", post.Likes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

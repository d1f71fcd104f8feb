package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type CommentRepo struct {
	DB *sql.DB
}

func (r CommentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const commentColumns = `id, user_id, post_id, content,
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanComment(row interface{ Scan(dest ...any) error }) (models.Comment, error) {
	var cm models.Comment
	err := row.Scan(&cm.ID, &cm.UserID, &cm.PostID, &cm.Content, &cm.CreatedAt, &cm.UpdatedAt)
	return cm, err
}

func (r CommentRepo) Create(cm models.Comment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO comments (user_id, post_id, content, created_at, updated_at)
		VALUES (?,?,?,NOW(),NOW())`,
		cm.UserID, cm.PostID, cm.Content)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CommentRepo) GetByID(id int64) (models.Comment, error) {
	row := r.db().QueryRow(`SELECT `+commentColumns+` FROM comments WHERE id=?`, id)
	return scanComment(row)
}

func (r CommentRepo) List(f models.CommentFilter, limit, offset int, sortBy, sortOrder string) ([]models.Comment, int, error) {
	where := []string{}
	args := []any{}

	if f.SearchTerm != "" {
		where = append(where, "content LIKE ?")
		args = append(args, "%"+f.SearchTerm+"%")
	}
	if f.PostID > 0 {
		where = append(where, "post_id = ?")
		args = append(args, f.PostID)
	}
	if f.UserID > 0 {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM comments`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+commentColumns+` FROM comments`+clause+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Comment{}
	for rows.Next() {
		cm, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, cm)
	}
	return list, total, rows.Err()
}

func (r CommentRepo) Update(id int64, upd models.CommentUpdate) error {
	if upd.Content == nil {
		return nil
	}
	_, err := r.db().Exec(`UPDATE comments SET content=?, updated_at=NOW() WHERE id=?`, *upd.Content, id)
	return err
}

func (r CommentRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM comments WHERE id=?`, id)
	return err
}

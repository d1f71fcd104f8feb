package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type BlogRepo struct {
	DB *sql.DB
}

func (r BlogRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const blogColumns = `id, event_id, title, content, COALESCE(image,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanBlog(row interface{ Scan(dest ...any) error }) (models.Blog, error) {
	var b models.Blog
	err := row.Scan(&b.ID, &b.EventID, &b.Title, &b.Content, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r BlogRepo) GetByID(id int64) (models.Blog, error) {
	row := r.db().QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id=?`, id)
	return scanBlog(row)
}

func (r BlogRepo) FindByTitle(title string) (models.Blog, error) {
	row := r.db().QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE LOWER(title)=LOWER(?)`,
		strings.TrimSpace(title))
	return scanBlog(row)
}

func (r BlogRepo) Create(b models.Blog) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO blogs (event_id, title, content, image, created_at, updated_at)
		VALUES (?,?,?,?,NOW(),NOW())`,
		b.EventID, strings.TrimSpace(b.Title), b.Content, b.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BlogRepo) List(f models.BlogFilter, limit, offset int, sortBy, sortOrder string) ([]models.Blog, int, error) {
	where := []string{}
	args := []any{}

	if f.SearchTerm != "" {
		where = append(where, "(title LIKE ? OR content LIKE ?)")
		like := "%" + f.SearchTerm + "%"
		args = append(args, like, like)
	}
	if f.EventID > 0 {
		where = append(where, "event_id = ?")
		args = append(args, f.EventID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM blogs`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+blogColumns+` FROM blogs`+clause+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

func (r BlogRepo) Update(id int64, upd models.BlogUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, strings.TrimSpace(*upd.Title))
	}
	if upd.Content != nil {
		sets = append(sets, "content=?")
		args = append(args, *upd.Content)
	}
	if upd.Image != nil {
		sets = append(sets, "image=?")
		args = append(args, *upd.Image)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE blogs SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r BlogRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM blogs WHERE id=?`, id)
	return err
}

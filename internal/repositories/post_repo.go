package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type PostRepo struct {
	DB *sql.DB
}

func (r PostRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const postColumns = `id, user_id, event_id, content, COALESCE(image,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanPost(row interface{ Scan(dest ...any) error }) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.UserID, &p.EventID, &p.Content, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r PostRepo) Create(p models.Post) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO posts (user_id, event_id, content, image, created_at, updated_at)
		VALUES (?,?,?,?,NOW(),NOW())`,
		p.UserID, p.EventID, p.Content, p.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PostRepo) GetByID(id int64) (models.Post, error) {
	row := r.db().QueryRow(`SELECT `+postColumns+` FROM posts WHERE id=?`, id)
	p, err := scanPost(row)
	if err != nil {
		return models.Post{}, err
	}
	likes, err := r.Likes(id)
	if err != nil {
		return models.Post{}, err
	}
	p.Likes = likes
	return p, nil
}

func (r PostRepo) List(f models.PostFilter, limit, offset int, sortBy, sortOrder string) ([]models.Post, int, error) {
	where := []string{}
	args := []any{}

	if f.SearchTerm != "" {
		where = append(where, "content LIKE ?")
		args = append(args, "%"+f.SearchTerm+"%")
	}
	if f.EventID > 0 {
		where = append(where, "event_id = ?")
		args = append(args, f.EventID)
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
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM posts`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+postColumns+` FROM posts`+clause+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range list {
		likes, err := r.Likes(list[i].ID)
		if err != nil {
			return nil, 0, err
		}
		list[i].Likes = likes
	}
	return list, total, nil
}

func (r PostRepo) Update(id int64, upd models.PostUpdate) error {
	sets := []string{}
	args := []any{}

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
	_, err := r.db().Exec(`UPDATE posts SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r PostRepo) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM post_likes WHERE post_id=?`, id); err != nil {
		return err
	}
	_, err := r.db().Exec(`DELETE FROM posts WHERE id=?`, id)
	return err
}

func (r PostRepo) Likes(postID int64) ([]int64, error) {
	rows, err := r.db().Query(`SELECT user_id FROM post_likes WHERE post_id=? ORDER BY user_id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := []int64{}
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		likes = append(likes, uid)
	}
	return likes, rows.Err()
}

// Like adds the user to the likes set. The unique (post_id, user_id) key
// makes the insert a no-op when the user already likes the post, so
// concurrent toggles cannot lose updates.
func (r PostRepo) Like(postID, userID int64) (bool, error) {
	res, err := r.db().Exec(`INSERT IGNORE INTO post_likes (post_id, user_id) VALUES (?,?)`, postID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Unlike removes the user from the likes set.
func (r PostRepo) Unlike(postID, userID int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM post_likes WHERE post_id=? AND user_id=?`, postID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

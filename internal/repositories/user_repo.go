package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, full_name, email, password_hash, role, status, COALESCE(profile_image,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id)
	return scanUser(row)
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE email=?`, strings.TrimSpace(email))
	return scanUser(row)
}

func (r UserRepo) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (full_name, email, password_hash, role, status, profile_image, created_at, updated_at)
		VALUES (?,?,?,?,?,?,NOW(),NOW())`,
		strings.TrimSpace(u.FullName), strings.TrimSpace(u.Email), u.PasswordHash, u.Role, u.Status, u.ProfileImage)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) List(f models.UserFilter, limit, offset int, sortBy, sortOrder string) ([]models.User, int, error) {
	where := []string{}
	args := []any{}

	if f.SearchTerm != "" {
		where = append(where, "(full_name LIKE ? OR email LIKE ?)")
		like := "%" + f.SearchTerm + "%"
		args = append(args, like, like)
	}
	if f.Role != "" {
		where = append(where, "role = ?")
		args = append(args, f.Role)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+userColumns+` FROM users`+clause+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

func (r UserRepo) Update(id int64, upd models.UserUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.FullName != nil {
		sets = append(sets, "full_name=?")
		args = append(args, strings.TrimSpace(*upd.FullName))
	}
	if upd.Role != nil {
		sets = append(sets, "role=?")
		args = append(args, *upd.Role)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if upd.ProfileImage != nil {
		sets = append(sets, "profile_image=?")
		args = append(args, *upd.ProfileImage)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE users SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r UserRepo) UpdatePassword(id int64, passwordHash string) error {
	_, err := r.db().Exec(`UPDATE users SET password_hash=?, updated_at=NOW() WHERE id=?`, passwordHash, id)
	return err
}

func (r UserRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	return err
}

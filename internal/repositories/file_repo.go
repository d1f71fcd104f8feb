package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type FileRepo struct {
	DB *sql.DB
}

func (r FileRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const fileColumns = `id, file_type, url, COALESCE(alt_text,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanFile(row interface{ Scan(dest ...any) error }) (models.File, error) {
	var f models.File
	err := row.Scan(&f.ID, &f.FileType, &f.URL, &f.AltText, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r FileRepo) Create(f models.File) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO files (file_type, url, alt_text, created_at, updated_at)
		VALUES (?,?,?,NOW(),NOW())`,
		f.FileType, f.URL, f.AltText)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FileRepo) GetByID(id int64) (models.File, error) {
	row := r.db().QueryRow(`SELECT `+fileColumns+` FROM files WHERE id=?`, id)
	return scanFile(row)
}

func (r FileRepo) List(limit, offset int) ([]models.File, int, error) {
	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM files`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+fileColumns+` FROM files ORDER BY id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.File{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, f)
	}
	return list, total, rows.Err()
}

func (r FileRepo) Update(id int64, url string, upd models.FileUpdate) error {
	sets := []string{}
	args := []any{}

	if url != "" {
		sets = append(sets, "url=?")
		args = append(args, url)
	}
	if upd.FileType != nil {
		sets = append(sets, "file_type=?")
		args = append(args, *upd.FileType)
	}
	if upd.AltText != nil {
		sets = append(sets, "alt_text=?")
		args = append(args, *upd.AltText)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE files SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r FileRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM files WHERE id=?`, id)
	return err
}

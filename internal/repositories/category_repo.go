package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type CategoryRepo struct {
	DB *sql.DB
}

func (r CategoryRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const categoryColumns = `id, name, COALESCE(description,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanCategory(row interface{ Scan(dest ...any) error }) (models.EventCategory, error) {
	var cat models.EventCategory
	err := row.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	return cat, err
}

func (r CategoryRepo) GetByID(id int64) (models.EventCategory, error) {
	row := r.db().QueryRow(`SELECT `+categoryColumns+` FROM event_categories WHERE id=?`, id)
	return scanCategory(row)
}

// FindByName matches the unique name case-insensitively.
func (r CategoryRepo) FindByName(name string) (models.EventCategory, error) {
	row := r.db().QueryRow(`SELECT `+categoryColumns+` FROM event_categories WHERE LOWER(name)=LOWER(?)`,
		strings.TrimSpace(name))
	return scanCategory(row)
}

func (r CategoryRepo) Create(cat models.EventCategory) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO event_categories (name, description, created_at, updated_at)
		VALUES (?,?,NOW(),NOW())`,
		strings.TrimSpace(cat.Name), cat.Description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CategoryRepo) List(searchTerm string, limit, offset int, sortBy, sortOrder string) ([]models.EventCategory, int, error) {
	where := ""
	args := []any{}
	if searchTerm != "" {
		where = " WHERE (name LIKE ? OR description LIKE ?)"
		like := "%" + searchTerm + "%"
		args = append(args, like, like)
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM event_categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+categoryColumns+` FROM event_categories`+where+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.EventCategory{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, cat)
	}
	return list, total, rows.Err()
}

func (r CategoryRepo) Update(id int64, upd models.EventCategoryUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE event_categories SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r CategoryRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM event_categories WHERE id=?`, id)
	return err
}

package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type EventRepo struct {
	DB *sql.DB
}

func (r EventRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const eventColumns = `id, title, COALESCE(description,''), capacity, price, event_category_id,
		COALESCE(DATE_FORMAT(event_date, '%Y-%m-%d'),''), COALESCE(start_time,''), COALESCE(end_time,''),
		COALESCE(location,''), COALESCE(images,'[]'),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanEvent(row interface{ Scan(dest ...any) error }) (models.Event, error) {
	var ev models.Event
	var images string
	err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.Description,
		&ev.Capacity,
		&ev.Price,
		&ev.EventCategoryID,
		&ev.EventDate,
		&ev.StartTime,
		&ev.EndTime,
		&ev.Location,
		&images,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}
	if err := json.Unmarshal([]byte(images), &ev.Images); err != nil {
		ev.Images = nil
	}
	return ev, nil
}

func (r EventRepo) GetByID(id int64) (models.Event, error) {
	row := r.db().QueryRow(`SELECT `+eventColumns+` FROM events WHERE id=?`, id)
	return scanEvent(row)
}

func (r EventRepo) Create(ev models.Event) (int64, error) {
	images, err := json.Marshal(ev.Images)
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO events (title, description, capacity, price, event_category_id,
			event_date, start_time, end_time, location, images, created_at, updated_at)
		VALUES (?,?,?,?,?,NULLIF(?,''),?,?,?,?,NOW(),NOW())`,
		ev.Title, ev.Description, ev.Capacity, ev.Price, ev.EventCategoryID,
		ev.EventDate, ev.StartTime, ev.EndTime, ev.Location, string(images),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List applies the allow-listed filters combined with AND. Text search is a
// substring match on title (case-insensitive via column collation).
func (r EventRepo) List(f models.EventFilter, limit, offset int, sortBy, sortOrder string) ([]models.Event, int, error) {
	where := []string{}
	args := []any{}

	if f.SearchTerm != "" {
		where = append(where, "title LIKE ?")
		args = append(args, "%"+f.SearchTerm+"%")
	}
	if len(f.CategoryIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.CategoryIDs)), ",")
		where = append(where, "event_category_id IN ("+placeholders+")")
		for _, id := range f.CategoryIDs {
			args = append(args, id)
		}
	}
	if f.Date != "" {
		where = append(where, "event_date = ?")
		args = append(args, f.Date)
	}
	if f.MinPrice != nil {
		where = append(where, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= ?")
		args = append(args, *f.MaxPrice)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM events`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + ` FROM events` + clause +
		` ORDER BY ` + sortBy + ` ` + sortOrder + ` LIMIT ? OFFSET ?`
	rows, err := r.db().Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, ev)
	}
	return list, total, rows.Err()
}

// Update performs PATCH-style updates based on key presence.
func (r EventRepo) Update(id int64, upd models.EventUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, strings.TrimSpace(*upd.Title))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.Capacity != nil {
		sets = append(sets, "capacity=?")
		args = append(args, *upd.Capacity)
	}
	if upd.Price != nil {
		sets = append(sets, "price=?")
		args = append(args, *upd.Price)
	}
	if upd.EventCategoryID != nil {
		sets = append(sets, "event_category_id=?")
		args = append(args, *upd.EventCategoryID)
	}
	if upd.EventDate != nil {
		sets = append(sets, "event_date=NULLIF(?,'')")
		args = append(args, *upd.EventDate)
	}
	if upd.StartTime != nil {
		sets = append(sets, "start_time=?")
		args = append(args, *upd.StartTime)
	}
	if upd.EndTime != nil {
		sets = append(sets, "end_time=?")
		args = append(args, *upd.EndTime)
	}
	if upd.Location != nil {
		sets = append(sets, "location=?")
		args = append(args, *upd.Location)
	}
	if upd.Images != nil {
		images, err := json.Marshal(*upd.Images)
		if err != nil {
			return err
		}
		sets = append(sets, "images=?")
		args = append(args, string(images))
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE events SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r EventRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM events WHERE id=?`, id)
	return err
}

// GetForUpdateTx loads an event inside the booking transaction.
func (r EventRepo) GetForUpdateTx(tx *sql.Tx, id int64) (models.Event, error) {
	var ev models.Event
	err := tx.QueryRow(`SELECT id, title, capacity, price FROM events WHERE id=?`, id).
		Scan(&ev.ID, &ev.Title, &ev.Capacity, &ev.Price)
	return ev, err
}

// ReserveCapacityTx decrements capacity only when enough seats remain. The
// guard column condition makes the compare-and-swap explicit; false means the
// remaining capacity was below qty.
func (r EventRepo) ReserveCapacityTx(tx *sql.Tx, eventID int64, qty int) (bool, error) {
	res, err := tx.Exec(`UPDATE events SET capacity = capacity - ? WHERE id = ? AND capacity >= ?`,
		qty, eventID, qty)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ReleaseCapacityTx compensates a reservation after a failed charge.
func (r EventRepo) ReleaseCapacityTx(tx *sql.Tx, eventID int64, qty int) error {
	_, err := tx.Exec(`UPDATE events SET capacity = capacity + ? WHERE id = ?`, qty, eventID)
	return err
}

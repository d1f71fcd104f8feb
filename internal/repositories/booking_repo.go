package repositories

import (
	"database/sql"
	"strings"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, user_id, total_price, payment_gateway, payment_status, status,
		COALESCE(payment_intent_id,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.TotalPrice, &b.PaymentGateway, &b.PaymentStatus,
		&b.Status, &b.PaymentIntentID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// CreateTx inserts the booking and its cart lines inside the reservation
// transaction.
func (r BookingRepo) CreateTx(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings (user_id, total_price, payment_gateway, payment_status, status, payment_intent_id, created_at, updated_at)
		VALUES (?,?,?,?,?,NULLIF(?,''),NOW(),NOW())`,
		b.UserID, b.TotalPrice, b.PaymentGateway, b.PaymentStatus, b.Status, b.PaymentIntentID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, line := range b.Cart {
		if _, err := tx.Exec(`INSERT INTO booking_carts (booking_id, event_id, quantity) VALUES (?,?,?)`,
			id, line.EventID, line.Quantity); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id)
	b, err := scanBooking(row)
	if err != nil {
		return models.Booking{}, err
	}
	cart, err := r.cartLines(id)
	if err != nil {
		return models.Booking{}, err
	}
	b.Cart = cart
	return b, nil
}

func (r BookingRepo) cartLines(bookingID int64) ([]models.CartLine, error) {
	rows, err := r.db().Query(`SELECT event_id, quantity FROM booking_carts WHERE booking_id=? ORDER BY id`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.EventID, &line.Quantity); err != nil {
			return nil, err
		}
		cart = append(cart, line)
	}
	return cart, rows.Err()
}

func (r BookingRepo) List(f models.BookingFilter, limit, offset int, sortBy, sortOrder string) ([]models.Booking, int, error) {
	where := []string{}
	args := []any{}

	if f.UserID > 0 {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
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
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings`+clause+
		` ORDER BY `+sortBy+` `+sortOrder+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range list {
		cart, err := r.cartLines(list[i].ID)
		if err != nil {
			return nil, 0, err
		}
		list[i].Cart = cart
	}
	return list, total, nil
}

func (r BookingRepo) UpdateStatus(id int64, status string) error {
	_, err := r.db().Exec(`UPDATE bookings SET status=?, updated_at=NOW() WHERE id=?`, status, id)
	return err
}

func (r BookingRepo) UpdatePaymentStatus(id int64, paymentStatus string) error {
	_, err := r.db().Exec(`UPDATE bookings SET payment_status=?, updated_at=NOW() WHERE id=?`, paymentStatus, id)
	return err
}

func (r BookingRepo) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM booking_carts WHERE booking_id=?`, id); err != nil {
		return err
	}
	_, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	return err
}

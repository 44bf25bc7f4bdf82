package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `id, service, customer_name, email, phone, tracking_id, created_at`

func scanBookingRow(row rowScanner) (domain.Booking, error) {
	var (
		b     domain.Booking
		phone *string
	)
	err := row.Scan(
		&b.ID,
		&b.Service,
		&b.CustomerName,
		&b.Email,
		&phone,
		&b.TrackingID,
		&b.CreatedAt,
	)
	if phone != nil {
		b.Phone = *phone
	}
	return b, err
}

func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
INSERT INTO bookings (service, customer_name, email, phone, tracking_id)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + bookingColumns + `;
`
	out, err := scanBookingRow(r.db.QueryRowContext(ctx, q,
		b.Service, b.CustomerName, b.Email, b.Phone, b.TrackingID,
	))
	if err != nil {
		if isDuplicate(err) {
			// tracking_id collision; caller retries with a fresh ID
			return domain.Booking{}, domain.ErrTrackingIDTaken()
		}
		return domain.Booking{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *BookingRepo) GetByTrackingID(ctx context.Context, trackingID string) (domain.Booking, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return domain.Booking{}, domain.ErrMissingField("tracking_id")
	}

	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE tracking_id = $1
LIMIT 1;
`
	b, err := scanBookingRow(r.db.QueryRowContext(ctx, q, trackingID))
	if err != nil {
		if isNoRows(err) {
			return domain.Booking{}, domain.ErrBookingNotFound()
		}
		return domain.Booking{}, domain.ErrDBUnavailable(err)
	}
	return b, nil
}

func (r *BookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

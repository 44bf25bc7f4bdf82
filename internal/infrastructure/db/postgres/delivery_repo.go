package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

type DeliveryRepo struct {
	db *sql.DB
}

func NewDeliveryRepo(db *sql.DB) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

const deliveryColumns = `id, item, customer_name, address, date, status, created_at`

func scanDeliveryRow(row rowScanner) (domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.ID,
		&d.Item,
		&d.CustomerName,
		&d.Address,
		&d.Date,
		&d.Status,
		&d.CreatedAt,
	)
	return d, err
}

func (r *DeliveryRepo) Create(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	const q = `
INSERT INTO deliveries (item, customer_name, address, date, status)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + deliveryColumns + `;
`
	out, err := scanDeliveryRow(r.db.QueryRowContext(ctx, q,
		d.Item, d.CustomerName, d.Address, d.Date, d.Status,
	))
	if err != nil {
		return domain.Delivery{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// List filters by status and a free-text search over item, address and
// customer name, newest first. Returns the page plus the unpaged total.
func (r *DeliveryRepo) List(ctx context.Context, status, search string, offset, limit int) ([]domain.Delivery, int, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if status != "" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(item ILIKE $%d OR address ILIKE $%d OR customer_name ILIKE $%d)", n, n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = "WHERE " + strings.Join(where, " AND ")
	}

	countQ := fmt.Sprintf(`SELECT COUNT(1) FROM deliveries %s;`, clause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}

	args = append(args, limit, offset)
	listQ := fmt.Sprintf(`
SELECT %s
FROM deliveries
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d;
`, deliveryColumns, clause, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, listQ, args...)
	if err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, 0, domain.ErrDBUnavailable(err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}
	return out, total, nil
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (domain.Delivery, error) {
	const q = `
SELECT ` + deliveryColumns + `
FROM deliveries
WHERE id = $1
LIMIT 1;
`
	d, err := scanDeliveryRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.Delivery{}, domain.ErrDeliveryNotFound()
		}
		return domain.Delivery{}, domain.ErrDBUnavailable(err)
	}
	return d, nil
}

func (r *DeliveryRepo) UpdateStatus(ctx context.Context, id int64, status string) (domain.Delivery, error) {
	const q = `
UPDATE deliveries
SET status = $2
WHERE id = $1
RETURNING ` + deliveryColumns + `;
`
	d, err := scanDeliveryRow(r.db.QueryRowContext(ctx, q, id, status))
	if err != nil {
		if isNoRows(err) {
			return domain.Delivery{}, domain.ErrDeliveryNotFound()
		}
		return domain.Delivery{}, domain.ErrDBUnavailable(err)
	}
	return d, nil
}

func (r *DeliveryRepo) Update(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	const q = `
UPDATE deliveries
SET item          = COALESCE(NULLIF($2, ''), item),
    customer_name = COALESCE(NULLIF($3, ''), customer_name),
    address       = COALESCE(NULLIF($4, ''), address),
    date          = COALESCE(NULLIF($5, ''), date),
    status        = COALESCE(NULLIF($6, ''), status)
WHERE id = $1
RETURNING ` + deliveryColumns + `;
`
	out, err := scanDeliveryRow(r.db.QueryRowContext(ctx, q,
		d.ID, d.Item, d.CustomerName, d.Address, d.Date, d.Status,
	))
	if err != nil {
		if isNoRows(err) {
			return domain.Delivery{}, domain.ErrDeliveryNotFound()
		}
		return domain.Delivery{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *DeliveryRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM deliveries WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrDeliveryNotFound()
	}
	return nil
}

// StatusCounts fills the per-status counters; the derived figures are
// computed by the caller.
func (r *DeliveryRepo) StatusCounts(ctx context.Context) (domain.DeliveryStats, error) {
	const q = `
SELECT
  COUNT(1) FILTER (WHERE status = 'pending'),
  COUNT(1) FILTER (WHERE status = 'in_transit'),
  COUNT(1) FILTER (WHERE status = 'delivered'),
  COUNT(1)
FROM deliveries;
`
	var s domain.DeliveryStats
	err := r.db.QueryRowContext(ctx, q).Scan(&s.Pending, &s.InTransit, &s.Delivered, &s.Total)
	if err != nil {
		return domain.DeliveryStats{}, domain.ErrDBUnavailable(err)
	}
	return s, nil
}

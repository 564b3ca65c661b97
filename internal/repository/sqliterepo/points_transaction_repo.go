package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

// timeLayout фиксированной ширины, в UTC: строки сравниваются так же, как моменты времени.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const pointsTransactionColumns = `id, created_at, updated_at, member_id, kind, amount, balance_after, description,
	activity, idempotency_key, order_id, booking_id, related_id, expires_at`

type PointsTransactionRepository struct {
	conn uow.SQLDBTX
}

func NewPointsTransactionRepository(conn uow.SQLDBTX) *PointsTransactionRepository {
	return &PointsTransactionRepository{conn: conn}
}

// LockMember ничего не делает: пул SQLite состоит из одного соединения, транзакции уже выполняются
// последовательно.
func (r *PointsTransactionRepository) LockMember(_ context.Context, _ int64) error {
	return nil
}

func (r *PointsTransactionRepository) Create(
	ctx context.Context,
	args repoargs.PointsTransactionCreate,
) (*domain.PointsTransaction, error) {
	now := formatTime(time.Now())
	row := r.conn.QueryRowContext(ctx, `
		INSERT INTO points_transactions (created_at, updated_at, member_id, kind, amount, balance_after, description,
			activity, idempotency_key, order_id, booking_id, related_id, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+pointsTransactionColumns,
		now,
		now,
		args.MemberID,
		string(args.Kind),
		args.Amount,
		args.BalanceAfter,
		args.Description,
		string(args.Activity),
		args.IdempotencyKey,
		args.OrderID,
		args.BookingID,
		args.RelatedID,
		formatNullableTime(args.ExpiresAt),
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating points transaction for member %d", args.MemberID)
	}
	return transaction, nil
}

func (r *PointsTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.PointsTransaction, error) {
	row := r.conn.QueryRowContext(ctx, `SELECT `+pointsTransactionColumns+` FROM points_transactions WHERE id = ?`, id)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "getting points transaction %d", id)
	}
	return transaction, nil
}

func (r *PointsTransactionRepository) FindByIdempotencyKey(
	ctx context.Context,
	memberID int64,
	key string,
) (*domain.PointsTransaction, error) {
	row := r.conn.QueryRowContext(ctx,
		`SELECT `+pointsTransactionColumns+` FROM points_transactions WHERE member_id = ? AND idempotency_key = ?`,
		memberID, key,
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding points transaction by key `%s` for member %d", key, memberID)
	}
	return transaction, nil
}

func (r *PointsTransactionRepository) List(
	ctx context.Context,
	memberID int64,
	filter repoargs.ListFilter,
) ([]domain.PointsTransaction, error) {
	conditions := []string{"member_id = ?"}
	args := []any{memberID}

	if filter.Kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.From != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, formatTime(*filter.To))
	}

	query := `SELECT ` + pointsTransactionColumns + ` FROM points_transactions WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC, id DESC`

	// SQLite не допускает OFFSET без LIMIT, -1 снимает ограничение.
	switch {
	case filter.Limit > 0:
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	case filter.Offset > 0:
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	return r.query(ctx, fmt.Sprintf("listing points transactions for member %d", memberID), query, args...)
}

func (r *PointsTransactionRepository) GetMemberBalance(
	ctx context.Context,
	memberID int64,
) (*repoargs.BalanceAggregation, error) {
	var agg repoargs.BalanceAggregation
	err := r.conn.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN kind = 'earned' THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN kind = 'spent' THEN amount ELSE 0 END), 0),
		       COUNT(*)
		FROM points_transactions
		WHERE member_id = ?`, memberID).
		Scan(&agg.EarnedAmount, &agg.SpentAmount, &agg.Count)
	if err != nil {
		return nil, convertErr(err, "getting balance for member %d", memberID)
	}
	return &agg, nil
}

func (r *PointsTransactionRepository) FindExpiring(
	ctx context.Context,
	from, to time.Time,
) ([]domain.PointsTransaction, error) {
	return r.query(ctx, "finding expiring points transactions", `
		SELECT `+pointsTransactionColumns+` FROM points_transactions
		WHERE kind = 'earned' AND expires_at IS NOT NULL AND expires_at BETWEEN ? AND ?
		ORDER BY expires_at, id`, formatTime(from), formatTime(to))
}

func (r *PointsTransactionRepository) FindExpired(ctx context.Context, now time.Time) ([]domain.PointsTransaction, error) {
	return r.query(ctx, "finding expired points transactions", `
		SELECT `+pointsTransactionColumns+` FROM points_transactions
		WHERE kind = 'earned' AND expires_at IS NOT NULL AND expires_at < ?
		ORDER BY expires_at, id`, formatTime(now))
}

func (r *PointsTransactionRepository) TopMembersByBalance(
	ctx context.Context,
	limit uint,
) ([]domain.MemberBalance, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT member_id,
		       SUM(CASE WHEN kind = 'earned' THEN amount ELSE -amount END) AS balance
		FROM points_transactions
		GROUP BY member_id
		ORDER BY balance DESC, member_id
		LIMIT ?`, limit)
	if err != nil {
		return nil, convertErr(err, "getting top members by balance")
	}
	defer rows.Close()

	var balances []domain.MemberBalance
	for rows.Next() {
		var b domain.MemberBalance
		if scanErr := rows.Scan(&b.MemberID, &b.Balance); scanErr != nil {
			return nil, convertErr(scanErr, "scanning top members by balance")
		}
		balances = append(balances, b)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating top members by balance")
	}
	return balances, nil
}

func (r *PointsTransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM points_transactions`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting points transactions")
	}
	return count, nil
}

func (r *PointsTransactionRepository) CountForMember(ctx context.Context, memberID int64) (int64, error) {
	var count int64
	err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM points_transactions WHERE member_id = ?`, memberID).
		Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting points transactions for member %d", memberID)
	}
	return count, nil
}

func (r *PointsTransactionRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.PointsTransactionUpdate,
) (*domain.PointsTransaction, error) {
	sets := []string{"updated_at = ?"}
	values := []any{formatTime(time.Now())}

	if args.Description != nil {
		sets = append(sets, "description = ?")
		values = append(values, *args.Description)
	}
	if args.OrderID != nil {
		sets = append(sets, "order_id = ?")
		values = append(values, *args.OrderID)
	}
	if args.BookingID != nil {
		sets = append(sets, "booking_id = ?")
		values = append(values, *args.BookingID)
	}
	switch {
	case args.ClearExpiresAt:
		sets = append(sets, "expires_at = NULL")
	case args.ExpiresAt != nil:
		sets = append(sets, "expires_at = ?")
		values = append(values, formatTime(*args.ExpiresAt))
	}
	values = append(values, id)

	row := r.conn.QueryRowContext(ctx,
		`UPDATE points_transactions SET `+strings.Join(sets, ", ")+` WHERE id = ? RETURNING `+pointsTransactionColumns,
		values...,
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating points transaction %d", id)
	}
	return transaction, nil
}

func (r *PointsTransactionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM points_transactions WHERE id = ?`, id)
	if err != nil {
		return convertErr(err, "deleting points transaction %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return convertErr(err, "deleting points transaction %d", id)
	}
	if affected == 0 {
		return convertErr(sql.ErrNoRows, "deleting points transaction %d", id)
	}
	return nil
}

func (r *PointsTransactionRepository) query(
	ctx context.Context,
	msg string,
	query string,
	args ...any,
) ([]domain.PointsTransaction, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	defer rows.Close()

	var transactions []domain.PointsTransaction
	for rows.Next() {
		t, scanErr := scanPointsTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "%s", msg)
		}
		transactions = append(transactions, *t)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "%s", msg)
	}
	return transactions, nil
}

func scanPointsTransaction(scanner interface{ Scan(...any) error }) (*domain.PointsTransaction, error) {
	var t domain.PointsTransaction
	var kind, activity, createdAt, updatedAt string
	var idempotencyKey, expiresAt sql.NullString
	var orderID, bookingID, relatedID sql.NullInt64

	err := scanner.Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
		&t.MemberID,
		&kind,
		&t.Amount,
		&t.BalanceAfter,
		&t.Description,
		&activity,
		&idempotencyKey,
		&orderID,
		&bookingID,
		&relatedID,
		&expiresAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if t.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	if expiresAt.Valid {
		exp, parseErr := time.Parse(timeLayout, expiresAt.String)
		if parseErr != nil {
			return nil, fmt.Errorf("parse expires_at: %w", parseErr)
		}
		t.ExpiresAt = &exp
	}
	if idempotencyKey.Valid {
		t.IdempotencyKey = &idempotencyKey.String
	}
	t.OrderID = nullableInt64(orderID)
	t.BookingID = nullableInt64(bookingID)
	t.RelatedID = nullableInt64(relatedID)
	t.Kind = domain.TransactionKind(kind)
	t.Activity = domain.ActivityKind(activity)
	return &t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

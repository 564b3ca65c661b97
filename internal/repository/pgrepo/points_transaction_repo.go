package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/pkg/uow"
)

const pointsTransactionColumns = `id, created_at, updated_at, member_id, kind, amount, balance_after, description,
	activity, idempotency_key, order_id, booking_id, related_id, expires_at`

type PointsTransactionRepository struct {
	conn uow.DBTX
}

func NewPointsTransactionRepository(conn uow.DBTX) *PointsTransactionRepository {
	return &PointsTransactionRepository{conn: conn}
}

// LockMember берет транзакционную advisory блокировку по id участника. Блокировка снимается при завершении
// транзакции, поэтому вызывать метод имеет смысл только внутри uow.Do.
func (r *PointsTransactionRepository) LockMember(ctx context.Context, memberID int64) error {
	if _, err := r.conn.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, memberID); err != nil {
		return convertErr(err, "locking member %d", memberID)
	}
	return nil
}

func (r *PointsTransactionRepository) Create(
	ctx context.Context,
	args repoargs.PointsTransactionCreate,
) (*domain.PointsTransaction, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO points_transactions (member_id, kind, amount, balance_after, description, activity,
			idempotency_key, order_id, booking_id, related_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+pointsTransactionColumns,
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
		args.ExpiresAt,
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating points transaction for member %d", args.MemberID)
	}
	return transaction, nil
}

// GetByID возвращает запись журнала. Если запись не найдена - domain.ErrRecordNotFound.
func (r *PointsTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.PointsTransaction, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+pointsTransactionColumns+` FROM points_transactions WHERE id = $1`, id)
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
	row := r.conn.QueryRow(ctx,
		`SELECT `+pointsTransactionColumns+` FROM points_transactions WHERE member_id = $1 AND idempotency_key = $2`,
		memberID, key,
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding points transaction by key `%s` for member %d", key, memberID)
	}
	return transaction, nil
}

// List возвращает записи участника, отсортированные по дате создания по убыванию.
func (r *PointsTransactionRepository) List(
	ctx context.Context,
	memberID int64,
	filter repoargs.ListFilter,
) ([]domain.PointsTransaction, error) {
	conditions := []string{"member_id = $1"}
	args := []any{memberID}

	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT ` + pointsTransactionColumns + ` FROM points_transactions WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC, id DESC`

	if filter.Limit > 0 {
		limit, limitErr := safeConvertUintToInt32(filter.Limit)
		if limitErr != nil {
			return nil, convertErr(limitErr, "converting limit to int32")
		}
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		offset, offsetErr := safeConvertUintToInt32(filter.Offset)
		if offsetErr != nil {
			return nil, convertErr(offsetErr, "converting offset to int32")
		}
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.query(ctx, fmt.Sprintf("listing points transactions for member %d", memberID), query, args...)
}

// GetMemberBalance возвращает суммы начислений и списаний участника. Для участника без записей
// возвращается нулевая агрегация.
func (r *PointsTransactionRepository) GetMemberBalance(
	ctx context.Context,
	memberID int64,
) (*repoargs.BalanceAggregation, error) {
	var agg repoargs.BalanceAggregation
	err := r.conn.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE kind = 'earned'), 0)::bigint,
		       COALESCE(SUM(amount) FILTER (WHERE kind = 'spent'), 0)::bigint,
		       COUNT(*)
		FROM points_transactions
		WHERE member_id = $1`, memberID).
		Scan(&agg.EarnedAmount, &agg.SpentAmount, &agg.Count)
	if err != nil {
		return nil, convertErr(err, "getting balance for member %d", memberID)
	}
	return &agg, nil
}

// FindExpiring возвращает начисления со сроком действия в интервале [from, to].
func (r *PointsTransactionRepository) FindExpiring(
	ctx context.Context,
	from, to time.Time,
) ([]domain.PointsTransaction, error) {
	return r.query(ctx, "finding expiring points transactions", `
		SELECT `+pointsTransactionColumns+` FROM points_transactions
		WHERE kind = 'earned' AND expires_at IS NOT NULL AND expires_at BETWEEN $1 AND $2
		ORDER BY expires_at, id`, from, to)
}

func (r *PointsTransactionRepository) FindExpired(ctx context.Context, now time.Time) ([]domain.PointsTransaction, error) {
	return r.query(ctx, "finding expired points transactions", `
		SELECT `+pointsTransactionColumns+` FROM points_transactions
		WHERE kind = 'earned' AND expires_at IS NOT NULL AND expires_at < $1
		ORDER BY expires_at, id`, now)
}

func (r *PointsTransactionRepository) TopMembersByBalance(
	ctx context.Context,
	limit uint,
) ([]domain.MemberBalance, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := r.conn.Query(ctx, `
		SELECT member_id,
		       SUM(CASE WHEN kind = 'earned' THEN amount ELSE -amount END)::bigint AS balance
		FROM points_transactions
		GROUP BY member_id
		ORDER BY balance DESC, member_id
		LIMIT $1`, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting top members by balance")
	}
	balances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MemberBalance, error) {
		var b domain.MemberBalance
		scanErr := row.Scan(&b.MemberID, &b.Balance)
		return b, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning top members by balance")
	}
	return balances, nil
}

func (r *PointsTransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM points_transactions`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting points transactions")
	}
	return count, nil
}

func (r *PointsTransactionRepository) CountForMember(ctx context.Context, memberID int64) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM points_transactions WHERE member_id = $1`, memberID).
		Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting points transactions for member %d", memberID)
	}
	return count, nil
}

// Update меняет метаданные записи. Возвращает domain.ErrRecordNotFound если записи нет.
func (r *PointsTransactionRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.PointsTransactionUpdate,
) (*domain.PointsTransaction, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE points_transactions SET
			description = COALESCE($2, description),
			order_id    = COALESCE($3, order_id),
			booking_id  = COALESCE($4, booking_id),
			expires_at  = CASE WHEN $5::boolean THEN NULL ELSE COALESCE($6, expires_at) END,
			updated_at  = now()
		WHERE id = $1
		RETURNING `+pointsTransactionColumns,
		id, args.Description, args.OrderID, args.BookingID, args.ClearExpiresAt, args.ExpiresAt,
	)
	transaction, err := scanPointsTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating points transaction %d", id)
	}
	return transaction, nil
}

func (r *PointsTransactionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM points_transactions WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting points transaction %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting points transaction %d", id)
	}
	return nil
}

func (r *PointsTransactionRepository) query(
	ctx context.Context,
	msg string,
	query string,
	args ...any,
) ([]domain.PointsTransaction, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	transactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PointsTransaction, error) {
		t, scanErr := scanPointsTransaction(row)
		if scanErr != nil {
			return domain.PointsTransaction{}, scanErr
		}
		return *t, nil
	})
	if err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return transactions, nil
}

func scanPointsTransaction(row pgx.Row) (*domain.PointsTransaction, error) {
	var t domain.PointsTransaction
	var kind, activity string

	err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.MemberID,
		&kind,
		&t.Amount,
		&t.BalanceAfter,
		&t.Description,
		&activity,
		&t.IdempotencyKey,
		&t.OrderID,
		&t.BookingID,
		&t.RelatedID,
		&t.ExpiresAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Kind = domain.TransactionKind(kind)
	t.Activity = domain.ActivityKind(activity)
	return &t, nil
}

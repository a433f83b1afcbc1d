package pgrepo

import (
	"context"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, account_id, type, status, amount,
	method, account_number, reference, note`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create вставляет pending запись леджера. Статус задается на стороне БД и из
// клиентских флоу не меняется никогда.
func (r *TransactionRepository) Create(
	ctx context.Context,
	record domain.PendingTransaction,
) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, type, amount, method, account_number, reference, note)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING ` + transactionColumns

	transaction, err := r.scanTransaction(r.db.QueryRow(ctx, query,
		record.AccountID,
		record.Type,
		record.Amount,
		record.Method,
		record.AccountNumber,
		record.Reference,
		record.Note,
	))
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for account %d", record.Type, record.AccountID)
	}
	return transaction, nil
}

// GetByAccountID возвращает транзакции аккаунта, отсортированные от новых к старым.
// При равном created_at порядок детерминируется по id.
func (r *TransactionRepository) GetByAccountID(
	ctx context.Context,
	accountID int64,
	limit uint,
) ([]domain.Transaction, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, accountID, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting transactions by account %d", accountID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := r.scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction row for account %d", accountID)
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading transactions for account %d", accountID)
	}
	return transactions, nil
}

// Count считает не отклоненные транзакции аккаунта по типу начиная с args.Since.
func (r *TransactionRepository) Count(ctx context.Context, args repoargs.CountTransactions) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE account_id = $1 AND type = $2 AND status <> 'rejected' AND created_at >= $3`

	var count int64
	err := r.db.QueryRow(ctx, query, args.AccountID, args.Type, args.Since).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting %s transactions for account %d", args.Type, args.AccountID)
	}
	return count, nil
}

func (r *TransactionRepository) scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var method, accountNumber, reference, note *string
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&transaction.AccountID,
		&transaction.Type,
		&transaction.Status,
		&transaction.Amount,
		&method,
		&accountNumber,
		&reference,
		&note,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if method != nil {
		transaction.Method = domain.PaymentMethod(*method)
	}
	if accountNumber != nil {
		transaction.AccountNumber = *accountNumber
	}
	if reference != nil {
		transaction.Reference = *reference
	}
	if note != nil {
		transaction.Note = *note
	}
	return &transaction, nil
}

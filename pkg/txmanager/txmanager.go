// Package txmanager управление транзакциями поверх dbmetrics.DB.
// Транзакция передается вниз по стеку через контекст; репозитории получают
// ее через dbmetrics.GetExecutor.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
)

// ErrTxConflict возвращается при конфликте блокировок или сериализации.
// Вызывающая сторона может безопасно повторить всю операцию целиком:
// транзакция уже откачена и частичных записей не осталось.
var ErrTxConflict = errors.New("txmanager: transaction conflict")

// Коды ошибок PostgreSQL, после которых операцию имеет смысл повторить.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

// TxBeginner источник транзакций (dbmetrics.DB).
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в транзакции.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает transaction manager.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (Read Committed).
// Блокировки строк берутся явными FOR UPDATE внутри fn.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции (снимок данных).
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", MapConflict(err))
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		// Откат при любой ошибке fn; ошибка отката вторична и не затирает исходную
		_ = tx.Rollback()
		return MapConflict(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", MapConflict(err))
	}

	return nil
}

// MapConflict заменяет повторяемые ошибки PostgreSQL на ErrTxConflict,
// сохраняя исходный текст. Остальные ошибки возвращает как есть.
func MapConflict(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
			return fmt.Errorf("%w: %v", ErrTxConflict, err)
		}
	}

	return err
}

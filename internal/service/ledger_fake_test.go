package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
)

// fakeLedgerStore is an in-memory stand-in for the PostgreSQL store with
// real per-wallet exclusive locks and transactional (all-or-nothing)
// commits. It backs the concurrency and atomicity tests, which need actual
// interleaving rather than mock expectations.
type fakeLedgerStore struct {
	mu        sync.Mutex
	wallets   map[int64]*domain.Wallet
	rowLocks  map[int64]*sync.Mutex
	txns      []domain.Transaction
	nextTxnID int64
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		wallets:  make(map[int64]*domain.Wallet),
		rowLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *fakeLedgerStore) addWallet(id, userID int64, currency string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[id] = &domain.Wallet{
		ID:       id,
		UserID:   userID,
		Currency: currency,
		Balance:  balance,
		Version:  1,
	}
}

func (s *fakeLedgerStore) rowLock(id int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lk, ok := s.rowLocks[id]
	if !ok {
		lk = &sync.Mutex{}
		s.rowLocks[id] = lk
	}
	return lk
}

func (s *fakeLedgerStore) balance(id int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallets[id].Balance
}

func (s *fakeLedgerStore) transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// fakeTx is a transaction-scoped executor: balance changes and appended
// records are staged and only become visible on commit; row locks taken
// through it are held until the unit of work ends.
type fakeTx struct {
	store  *fakeLedgerStore
	locked []*sync.Mutex
	deltas map[int64]decimal.Decimal
	staged []*domain.Transaction
	order  []int64
}

// The ledger fakes never execute SQL; the DBExecutor methods exist only to
// satisfy the interface.
func (t *fakeTx) GetContext(context.Context, interface{}, string, ...interface{}) error {
	panic("unexpected direct query on fakeTx")
}
func (t *fakeTx) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	panic("unexpected direct query on fakeTx")
}
func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	panic("unexpected direct query on fakeTx")
}
func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("unexpected direct query on fakeTx")
}

type fakeTxManager struct {
	store *fakeLedgerStore
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(q repository.DBExecutor) error) error {
	tx := &fakeTx{store: m.store, deltas: make(map[int64]decimal.Decimal)}
	err := fn(tx)
	if err == nil {
		m.store.mu.Lock()
		for _, id := range tx.order {
			w := m.store.wallets[id]
			w.Balance = w.Balance.Add(tx.deltas[id])
			w.Version++
		}
		for _, staged := range tx.staged {
			m.store.nextTxnID++
			staged.ID = m.store.nextTxnID
			staged.CreatedAt = time.Now().UTC()
			m.store.txns = append(m.store.txns, *staged)
		}
		m.store.mu.Unlock()
	}
	for i := len(tx.locked) - 1; i >= 0; i-- {
		tx.locked[i].Unlock()
	}
	return err
}

type fakeWalletRepo struct {
	store *fakeLedgerStore
}

func (r *fakeWalletRepo) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	wallet.ID = int64(len(r.store.wallets) + 1)
	r.store.wallets[wallet.ID] = wallet
	return nil
}

func (r *fakeWalletRepo) snapshot(tx *fakeTx, id int64) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[id]
	if !ok {
		return nil, util.ErrWalletNotFound
	}
	cp := *w
	if delta, ok := tx.deltas[id]; ok {
		cp.Balance = cp.Balance.Add(delta)
	}
	return &cp, nil
}

func (r *fakeWalletRepo) GetWalletByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	return r.snapshot(q.(*fakeTx), id)
}

func (r *fakeWalletRepo) GetWalletByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Wallet, error) {
	tx := q.(*fakeTx)
	r.store.mu.Lock()
	var id int64 = -1
	for _, w := range r.store.wallets {
		if w.UserID == userID {
			id = w.ID
			break
		}
	}
	r.store.mu.Unlock()
	if id < 0 {
		return nil, util.ErrWalletNotFound
	}
	return r.snapshot(tx, id)
}

func (r *fakeWalletRepo) GetWalletByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	tx := q.(*fakeTx)
	lk := r.store.rowLock(id)
	lk.Lock()
	tx.locked = append(tx.locked, lk)
	return r.snapshot(tx, id)
}

func (r *fakeWalletRepo) UpdateWalletBalance(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	tx := q.(*fakeTx)
	r.store.mu.Lock()
	_, ok := r.store.wallets[walletID]
	r.store.mu.Unlock()
	if !ok {
		return util.ErrWalletNotFound
	}
	if _, seen := tx.deltas[walletID]; !seen {
		tx.order = append(tx.order, walletID)
	}
	tx.deltas[walletID] = tx.deltas[walletID].Add(delta)
	return nil
}

type fakeTransactionRepo struct {
	store *fakeLedgerStore
}

func (r *fakeTransactionRepo) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	tx := q.(*fakeTx)
	tx.staged = append(tx.staged, transaction)
	return nil
}

func (r *fakeTransactionRepo) GetTransactionsByWalletID(ctx context.Context, q repository.DBExecutor, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	all := r.store.transactions()
	matched := []domain.Transaction{}
	for _, t := range all {
		if (t.FromWalletID != nil && *t.FromWalletID == walletID) || (t.ToWalletID != nil && *t.ToWalletID == walletID) {
			matched = append(matched, t)
		}
	}
	total := int64(len(matched))
	if offset > len(matched) {
		return []domain.Transaction{}, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

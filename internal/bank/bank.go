// internal/bank/bank.go

// Bank 為多型帳戶集合：所有操作都透過 Account 介面分派，
// 不需知道具體帳戶種類。每次操作結果會寫入結構化日誌 (slog)。
package bank

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// InterestBearer is implemented by variants that accrue interest.
type InterestBearer interface {
	Account
	AddInterest() (float64, error)
}

// Bank 依開戶順序保存帳戶。
// - order：開戶順序，List() 依此回傳。
// - accts：帳號索引表（number → Account）。
// - log：操作日誌；nil 時丟棄。
type Bank struct {
	order []Account
	accts map[string]Account
	log   *slog.Logger
}

// NewBank 建立空白集合；logger 可為 nil。
func NewBank(logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bank{accts: make(map[string]Account), log: logger}
}

// Open 加入帳戶；帳號重複時回傳 ErrDuplicate。
func (b *Bank) Open(a Account) error {
	if _, ok := b.accts[a.Number()]; ok {
		return fmt.Errorf("open %s: %w", a.Number(), ErrDuplicate)
	}
	b.accts[a.Number()] = a
	b.order = append(b.order, a)
	b.log.Info("account opened",
		slog.String("account", a.Number()),
		slog.String("kind", a.Kind().String()),
		slog.String("holder", a.Holder()),
		slog.Float64("balance", a.Balance()))
	return nil
}

// Get 依帳號取得帳戶；不存在回傳 ErrNotFound。
func (b *Bank) Get(number string) (Account, error) {
	a, ok := b.accts[number]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", number, ErrNotFound)
	}
	return a, nil
}

// List 依開戶順序回傳所有帳戶。
func (b *Bank) List() []Account {
	out := make([]Account, len(b.order))
	copy(out, b.order)
	return out
}

// Deposit 對指定帳戶存款。
func (b *Bank) Deposit(number string, amount float64) (Account, error) {
	a, err := b.Get(number)
	if err != nil {
		return nil, err
	}
	err = a.Deposit(amount)
	b.record(a, "deposit", amount, err)
	return a, err
}

// Withdraw 對指定帳戶提款；提款規則由帳戶種類決定。
func (b *Bank) Withdraw(number string, amount float64) (Account, error) {
	a, err := b.Get(number)
	if err != nil {
		return nil, err
	}
	err = a.Withdraw(amount)
	b.record(a, "withdraw", amount, err)
	return a, err
}

// AddInterest 對計息帳戶入帳利息；不計息的帳戶回傳 ErrNoInterest。
// 利息 <= 0 時回傳 ErrBadAmount，但 interest 仍為計算結果。
func (b *Bank) AddInterest(number string) (float64, error) {
	a, err := b.Get(number)
	if err != nil {
		return 0, err
	}
	ib, ok := a.(InterestBearer)
	if !ok {
		return 0, fmt.Errorf("interest %s: %w", number, ErrNoInterest)
	}
	interest, err := ib.AddInterest()
	b.record(a, "interest", interest, err)
	return interest, err
}

// Logs 回傳指定帳戶的交易日誌（拷貝）。
func (b *Bank) Logs(number string) ([]Log, error) {
	a, err := b.Get(number)
	if err != nil {
		return nil, err
	}
	return a.Logs(), nil
}

func (b *Bank) record(a Account, op string, amount float64, err error) {
	attrs := []slog.Attr{
		slog.String("account", a.Number()),
		slog.String("kind", a.Kind().String()),
		slog.Float64("amount", amount),
		slog.Float64("balance", a.Balance()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
		b.log.LogAttrs(context.Background(), slog.LevelWarn, op+" rejected", attrs...)
		return
	}
	b.log.LogAttrs(context.Background(), slog.LevelInfo, op, attrs...)
}

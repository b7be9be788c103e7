// internal/bank/account.go

// Package bank 定義帳戶的抽象介面與兩種具體帳戶（儲蓄、活期）。
// 本檔定義 Account 介面、共用的 base 狀態與預設存提款規則，不含任何輸出細節。
package bank

import "time"

// Kind is the human-readable label of an account variant.
type Kind string

const (
	KindSavings Kind = "Savings Account"
	KindCurrent Kind = "Current Account"
)

func (k Kind) String() string { return string(k) }

// Account is the capability set shared by every account variant.
type Account interface {
	Number() string
	Holder() string
	Balance() float64

	// Deposit 存款：金額需 > 0，否則回傳 ErrBadAmount 且餘額不變。
	Deposit(amount float64) error
	// Withdraw 提款：各帳戶種類自行決定提款規則。
	Withdraw(amount float64) error
	// Kind 回傳帳戶種類標籤，每個具體帳戶都必須提供。
	Kind() Kind
	// WithdrawLabel 回傳提款成功訊息的前綴，由覆寫提款規則的帳戶自行提供。
	WithdrawLabel() string
	// Logs 回傳帳戶交易日誌的拷貝。
	Logs() []Log
}

// Log represents an applied balance change.
type Log struct {
	Time      time.Time `json:"time"`
	Amount    float64   `json:"amount"`
	Direction string    `json:"direction"`
	Note      string    `json:"note"`
}

// base 保存所有帳戶共用的身分與餘額，供具體帳戶內嵌。
// number 與 holder 建立後不可變；balance 只透過存提款方法變更。
type base struct {
	number  string
	holder  string
	balance float64
	logs    []Log
}

// newBase 不檢查初始餘額，可以是負數。
func newBase(number, holder string, balance float64) base {
	return base{number: number, holder: holder, balance: balance}
}

func (b *base) Number() string { return b.number }
func (b *base) Holder() string { return b.holder }
func (b *base) Balance() float64 { return b.balance }

// Deposit 存款：金額需 > 0；失敗時回傳 ErrBadAmount，不寫日誌。
func (b *base) Deposit(amount float64) error {
	return b.credit(amount, "deposit")
}

// Withdraw 預設提款規則：0 < amount <= balance，確保提款後餘額非負。
func (b *base) Withdraw(amount float64) error {
	// 以成立條件撰寫判斷，NaN 會被拒絕
	if !(amount > 0) {
		return ErrBadAmount
	}
	if !(amount <= b.balance) {
		return ErrInsufficient
	}
	b.debit(amount, "withdraw")
	return nil
}

func (b *base) WithdrawLabel() string { return "Withdrew" }

func (b *base) Logs() []Log {
	out := make([]Log, len(b.logs))
	copy(out, b.logs)
	return out
}

// credit 同時更新餘額與追加日誌，確保兩者一致。
func (b *base) credit(amount float64, note string) error {
	if !(amount > 0) {
		return ErrBadAmount
	}
	b.balance += amount
	b.logs = append(b.logs, Log{Time: time.Now(), Amount: amount, Direction: "in", Note: note})
	return nil
}

// debit 不做任何檢查，由呼叫端負責提款規則。
func (b *base) debit(amount float64, note string) {
	b.balance -= amount
	b.logs = append(b.logs, Log{Time: time.Now(), Amount: amount, Direction: "out", Note: note})
}

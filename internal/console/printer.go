// internal/console/printer.go
//
// 本檔負責統一主控台輸出格式。
// 訊息內容完全由 bank 層回傳的錯誤決定，輸出本身不影響流程控制。
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"oopbank/internal/bank"
)

// Printer 將帳戶操作結果輸出為逐行文字。
type Printer struct {
	w io.Writer
}

// NewPrinter 建立輸出到 w 的 Printer。
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Amount 以最短的精確十進位表示金額，例如 1050、52.5、-40。
// 不做有效位數截斷，也不使用科學記號：1234567 輸出為 1234567。
func Amount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// AccountType 輸出帳戶種類。
func (p *Printer) AccountType(a bank.Account) {
	p.line("Account Type: %s", a.Kind())
}

// Deposit 輸出存款結果；失敗的存款不輸出任何訊息。
func (p *Printer) Deposit(amount float64, err error) {
	if err != nil {
		return
	}
	p.line("Deposited: %s", Amount(amount))
}

// Withdraw 輸出提款結果；成功訊息的前綴由帳戶自行提供。
func (p *Printer) Withdraw(a bank.Account, amount float64, err error) {
	switch {
	case errors.Is(err, bank.ErrOverdraft):
		p.line("Exceeds overdraft limit.")
	case err != nil:
		p.line("Insufficient balance or invalid amount.")
	default:
		p.line("%s: %s", a.WithdrawLabel(), Amount(amount))
	}
}

// Balance 輸出目前餘額，並以空行分隔下一個帳戶。
func (p *Printer) Balance(a bank.Account) {
	p.line("Balance: %s", Amount(a.Balance()))
	p.line("")
}

// Interest 輸出利息入帳結果。
// 利息未入帳時仍輸出 "Interest added"，與存款訊息分開判斷。
func (p *Printer) Interest(interest float64, err error) {
	p.Deposit(interest, err)
	p.line("Interest added: %s", Amount(interest))
}

func (p *Printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// internal/console/printer_test.go
//
// 驗證主控台訊息由 bank 層回傳的錯誤決定，且金額格式與原始輸出一致。
package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"oopbank/internal/bank"
)

func TestAmount(t *testing.T) {
	tests := map[float64]string{
		1050:    "1050",
		52.5:    "52.5",
		1102.5:  "1102.5",
		-40:     "-40",
		0:       "0",
		// 不截斷有效位數、不使用科學記號
		1234567: "1234567",
		1.0 / 3: "0.3333333333333333",
	}
	for in, want := range tests {
		assert.Equal(t, want, Amount(in), "Amount(%v)", in)
	}
}

func TestWithdrawMessages(t *testing.T) {
	sa := bank.NewSavingsAccount("S1", "A", 100, 5)
	ca := bank.NewCurrentAccount("C1", "B", 100, 50)

	tests := []struct {
		name string
		a    bank.Account
		err  error
		want string
	}{
		{"savings ok", sa, nil, "Withdrew: 150\n"},
		{"current ok", ca, nil, "Withdrew (Current): 150\n"},
		{"insufficient", sa, bank.ErrInsufficient, "Insufficient balance or invalid amount.\n"},
		{"bad amount", sa, bank.ErrBadAmount, "Insufficient balance or invalid amount.\n"},
		{"overdraft", ca, bank.ErrOverdraft, "Exceeds overdraft limit.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).Withdraw(tt.a, 150, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// 失敗的存款不輸出；利息訊息無論是否入帳都會輸出。
func TestDepositAndInterest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Deposit(-5, bank.ErrBadAmount)
	assert.Empty(t, buf.String())

	p.Interest(-10, bank.ErrBadAmount)
	assert.Equal(t, "Interest added: -10\n", buf.String())

	buf.Reset()
	p.Interest(52.5, nil)
	assert.Equal(t, "Deposited: 52.5\nInterest added: 52.5\n", buf.String())
}

func TestAccountTypeAndBalance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	ca := bank.NewCurrentAccount("C1", "B", -40, 50)

	p.AccountType(ca)
	p.Balance(ca)
	assert.Equal(t, "Account Type: Current Account\nBalance: -40\n\n", buf.String())
}

// renamed 以內嵌方式覆寫提款訊息前綴，模擬新的帳戶種類。
type renamed struct {
	*bank.SavingsAccount
}

func (renamed) WithdrawLabel() string { return "Withdrew (Renamed)" }

// 提款成功訊息由帳戶決定，不依帳戶種類判斷。
func TestWithdrawLabelFromAccount(t *testing.T) {
	var buf bytes.Buffer
	a := renamed{bank.NewSavingsAccount("R1", "R", 100, 1)}

	NewPrinter(&buf).Withdraw(a, 20, a.Withdraw(20))
	assert.Equal(t, "Withdrew (Renamed): 20\n", buf.String())
}

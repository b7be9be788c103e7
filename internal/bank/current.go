// internal/bank/current.go

package bank

// CurrentAccount 活期帳戶：允許在透支額度內提款。
type CurrentAccount struct {
	base
	overdraftLimit float64
}

// NewCurrentAccount 建立活期帳戶；餘額最低可到 -limit。
func NewCurrentAccount(number, holder string, balance, limit float64) *CurrentAccount {
	return &CurrentAccount{base: newBase(number, holder, balance), overdraftLimit: limit}
}

// OverdraftLimit 回傳透支額度。
func (c *CurrentAccount) OverdraftLimit() float64 { return c.overdraftLimit }

func (c *CurrentAccount) Kind() Kind { return KindCurrent }

func (c *CurrentAccount) WithdrawLabel() string { return "Withdrew (Current)" }

// Withdraw 覆寫預設提款規則：amount <= balance + overdraftLimit 即可提款。
// 注意：此處不檢查 amount > 0，負數提款會使餘額增加。
func (c *CurrentAccount) Withdraw(amount float64) error {
	if !(amount <= c.balance+c.overdraftLimit) {
		return ErrOverdraft
	}
	c.debit(amount, "withdraw")
	return nil
}

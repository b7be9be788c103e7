// internal/bank/savings.go

package bank

// SavingsAccount 儲蓄帳戶：沿用預設存提款規則，另外提供利息計算。
type SavingsAccount struct {
	base
	rate float64
}

// NewSavingsAccount 建立儲蓄帳戶；rate 為百分比（5 代表 5%）。
func NewSavingsAccount(number, holder string, balance, rate float64) *SavingsAccount {
	return &SavingsAccount{base: newBase(number, holder, balance), rate: rate}
}

// Rate 回傳年利率（百分比）。
func (s *SavingsAccount) Rate() float64 { return s.rate }

func (s *SavingsAccount) Kind() Kind { return KindSavings }

// AddInterest 依目前餘額計算利息 balance * rate / 100，並以存款規則入帳。
// 利息 <= 0（例如餘額為負）時不入帳，回傳 ErrBadAmount，但仍回傳計算出的利息。
func (s *SavingsAccount) AddInterest() (float64, error) {
	interest := s.balance * s.rate / 100
	return interest, s.credit(interest, "interest")
}

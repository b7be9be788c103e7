// cmd/oopbank/main.go

// 本程式以固定流程示範帳戶的多型操作：
// 建立儲蓄與活期帳戶，透過 Account 介面逐一存提款並輸出餘額，
// 最後只對儲蓄帳戶計算利息。
package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"oopbank/internal/bank"
	"oopbank/internal/console"
)

// 固定的示範設定：每個帳戶先存 depositAmount，再提 withdrawAmount。
const (
	depositAmount  = 200.0
	withdrawAmount = 150.0
)

func main() {
	// 日誌寫到 stderr，只保留失敗的操作；stdout 留給使用者訊息
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := run(os.Stdout, logger); err != nil {
		log.Fatal(err)
	}
}

// run 執行示範流程並將訊息寫入 w。
func run(w io.Writer, logger *slog.Logger) error {
	b := bank.NewBank(logger)
	out := console.NewPrinter(w)

	sa := bank.NewSavingsAccount("S123", "Alice", 1000.0, 5.0)
	ca := bank.NewCurrentAccount("C456", "Bob", 500.0, 200.0)
	for _, a := range []bank.Account{sa, ca} {
		if err := b.Open(a); err != nil {
			return err
		}
	}

	// 透過介面統一操作，不區分帳戶種類
	for _, a := range b.List() {
		out.AccountType(a)
		_, err := b.Deposit(a.Number(), depositAmount)
		out.Deposit(depositAmount, err)
		_, err = b.Withdraw(a.Number(), withdrawAmount)
		out.Withdraw(a, withdrawAmount, err)
		out.Balance(a)
	}

	out.Interest(b.AddInterest(sa.Number()))
	return nil
}

// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 存提款失敗一律以錯誤回傳，由上層（console）決定要輸出的訊息。

package bank

import "errors"

var (
	// ErrBadAmount 代表金額非法（存款或預設提款規則下 <= 0）。
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrInsufficient 代表餘額不足，預設提款規則拒絕提款。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrOverdraft 代表活期帳戶提款超過透支額度。
	ErrOverdraft = errors.New("exceeds overdraft limit")

	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")

	// ErrDuplicate 代表帳號已被使用。
	ErrDuplicate = errors.New("account number already exists")

	// ErrNoInterest 代表該帳戶種類不計息。
	ErrNoInterest = errors.New("account does not accrue interest")
)

package model

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/ledgerlite/ledgererr"
)

type TransactionKind string

const (
	KindCreate   TransactionKind = "Create"
	KindDeposit  TransactionKind = "Deposit"
	KindWithdraw TransactionKind = "Withdraw"
	KindTransfer TransactionKind = "Transfer"
)

// Transaction is one journal entry. The ledger hands out copies, so an entry
// never changes once appended.
type Transaction struct {
	TransactionID string          `json:"id"`
	Sequence      int             `json:"sequence"`
	Kind          TransactionKind `json:"kind"`
	AccountID     string          `json:"account_id"`
	Destination   string          `json:"destination,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Detail        string          `json:"detail"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (transaction *Transaction) validate() error {
	return validation.ValidateStruct(transaction,
		validation.Field(&transaction.Kind, validation.Required, validation.In(KindCreate, KindDeposit, KindWithdraw, KindTransfer)),
		validation.Field(&transaction.AccountID, validation.Required, validation.By(notBlank)),
	)
}

// NewTransaction builds a journal entry with a fresh id and timestamp. Kind and
// accountID must be set.
func NewTransaction(kind TransactionKind, accountID string, amount decimal.Decimal, detail string) (Transaction, error) {
	transaction := Transaction{
		Kind:      kind,
		AccountID: accountID,
		Amount:    amount,
		Detail:    detail,
	}
	if err := transaction.validate(); err != nil {
		return Transaction{}, ledgererr.New(ledgererr.ErrInvalidArgument, "Invalid transaction data!", err.Error())
	}
	transaction.TransactionID = GenerateUUIDWithSuffix("txn")
	transaction.CreatedAt = time.Now().UTC()
	return transaction, nil
}

func (transaction *Transaction) ToJSON() ([]byte, error) {
	return json.Marshal(transaction)
}

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/ledgerlite/ledgererr"
)

// Account holds one owner's balance. Fields are unexported so the balance can
// only move through Deposit, Withdraw and TransferTo.
type Account struct {
	id        string
	ownerName string
	balance   decimal.Decimal
	createdAt time.Time
}

// AccountView is a read-only copy of an account taken at a point in time.
type AccountView struct {
	AccountID string          `json:"account_id"`
	OwnerName string          `json:"owner_name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type newAccount struct {
	AccountID      string          `json:"account_id"`
	OwnerName      string          `json:"owner_name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func (a *newAccount) validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.AccountID, validation.Required, validation.By(notBlank)),
		validation.Field(&a.OwnerName, validation.Required, validation.By(notBlank)),
		validation.Field(&a.InitialBalance, validation.By(nonNegative)),
	)
}

// NewAccount validates the inputs and returns an account holding
// initialBalance. A blank id or owner, or a negative balance, yields an
// INVALID_ARGUMENT error.
func NewAccount(id, ownerName string, initialBalance decimal.Decimal) (*Account, error) {
	req := newAccount{AccountID: id, OwnerName: ownerName, InitialBalance: initialBalance}
	if err := req.validate(); err != nil {
		return nil, ledgererr.New(ledgererr.ErrInvalidArgument, "Invalid account data!", err.Error())
	}
	return &Account{
		id:        id,
		ownerName: ownerName,
		balance:   initialBalance,
		createdAt: time.Now().UTC(),
	}, nil
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) OwnerName() string {
	return a.ownerName
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) View() AccountView {
	return AccountView{
		AccountID: a.id,
		OwnerName: a.ownerName,
		Balance:   a.balance,
		CreatedAt: a.createdAt,
	}
}

// Deposit adds a strictly positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ledgererr.New(ledgererr.ErrInvalidArgument, "Deposit amount must be positive!", amount.String())
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes a strictly positive amount that does not exceed the
// current balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ledgererr.New(ledgererr.ErrInvalidArgument, "Withdrawal amount must be positive!", amount.String())
	}
	if amount.GreaterThan(a.balance) {
		return ledgererr.New(ledgererr.ErrInsufficientFunds, "Insufficient balance!",
			fmt.Sprintf("account %s: balance %s < amount %s", a.id, a.balance, amount))
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// TransferTo withdraws amount from a and deposits it into receiver. Only the
// withdrawal can fail, so neither account changes unless both steps apply.
func (a *Account) TransferTo(receiver *Account, amount decimal.Decimal) error {
	if receiver == nil {
		return ledgererr.New(ledgererr.ErrInvalidArgument, "Receiver account not found!", nil)
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	return receiver.Deposit(amount)
}

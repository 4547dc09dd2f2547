/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ledgerlite

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/ledgerlite/ledgererr"
	"github.com/jerry-enebeli/ledgerlite/model"
)

const (
	depositDetail    = "deposit completed"
	withdrawalDetail = "withdrawal completed"
)

// Outcome is what a successful operation hands back to the driver: the
// journal entry it produced and the accounts it touched, after the change.
type Outcome struct {
	Transaction model.Transaction
	Accounts    []model.AccountView

	precision int32
}

func (l *Ledger) outcome(transaction model.Transaction, accounts ...*model.Account) Outcome {
	views := make([]model.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return Outcome{Transaction: transaction, Accounts: views, precision: l.precision}
}

// Message renders the outcome for a human.
func (o Outcome) Message() string {
	switch o.Transaction.Kind {
	case model.KindCreate:
		return "Account created successfully!"
	case model.KindDeposit:
		return fmt.Sprintf("Deposit successful. New balance: %s", o.balance(0))
	case model.KindWithdraw:
		return fmt.Sprintf("Withdrawal successful. New balance: %s", o.balance(0))
	case model.KindTransfer:
		return fmt.Sprintf("Transfer successful!\nSender balance: %s | Receiver balance: %s", o.balance(0), o.balance(1))
	}
	return ""
}

func (o Outcome) balance(i int) string {
	if i >= len(o.Accounts) {
		return ""
	}
	return model.FormatAmount(o.Accounts[i].Balance, o.precision)
}

// Deposit credits amount to the account and journals a Deposit entry.
func (l *Ledger) Deposit(id string, amount decimal.Decimal) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := l.lookup(id, "Account not found!")
	if err != nil {
		return Outcome{}, reject(model.KindDeposit, id, err)
	}
	transaction, err := l.prepare(model.KindDeposit, id, amount, depositDetail)
	if err != nil {
		return Outcome{}, reject(model.KindDeposit, id, err)
	}
	if err := account.Deposit(amount); err != nil {
		return Outcome{}, reject(model.KindDeposit, id, err)
	}

	transaction = l.record(transaction)
	return l.outcome(transaction, account), nil
}

// Withdraw debits amount from the account and journals a Withdraw entry.
func (l *Ledger) Withdraw(id string, amount decimal.Decimal) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := l.lookup(id, "Account not found!")
	if err != nil {
		return Outcome{}, reject(model.KindWithdraw, id, err)
	}
	transaction, err := l.prepare(model.KindWithdraw, id, amount, withdrawalDetail)
	if err != nil {
		return Outcome{}, reject(model.KindWithdraw, id, err)
	}
	if err := account.Withdraw(amount); err != nil {
		return Outcome{}, reject(model.KindWithdraw, id, err)
	}

	transaction = l.record(transaction)
	return l.outcome(transaction, account), nil
}

// Transfer moves amount from fromID to toID and journals a single Transfer
// entry keyed to the sender. Both ids must exist and differ.
func (l *Ledger) Transfer(fromID, toID string, amount decimal.Decimal) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sender, senderErr := l.lookup(fromID, "One or both accounts not found!")
	receiver, receiverErr := l.lookup(toID, "One or both accounts not found!")
	if senderErr != nil {
		return Outcome{}, reject(model.KindTransfer, fromID, senderErr)
	}
	if receiverErr != nil {
		return Outcome{}, reject(model.KindTransfer, fromID, receiverErr)
	}

	if fromID == toID {
		return Outcome{}, reject(model.KindTransfer, fromID,
			ledgererr.New(ledgererr.ErrSameAccount, "Cannot transfer to the same account!", fromID))
	}

	transaction, err := l.prepare(model.KindTransfer, fromID, amount, fmt.Sprintf("transferred to %s", toID))
	if err != nil {
		return Outcome{}, reject(model.KindTransfer, fromID, err)
	}
	transaction.Destination = toID

	if err := sender.TransferTo(receiver, amount); err != nil {
		return Outcome{}, reject(model.KindTransfer, fromID, err)
	}

	transaction = l.record(transaction)
	return l.outcome(transaction, sender, receiver), nil
}

// prepare checks the amount against the ledger precision and builds the
// journal entry before any balance is touched.
func (l *Ledger) prepare(kind model.TransactionKind, id string, amount decimal.Decimal, detail string) (model.Transaction, error) {
	if err := model.CheckPrecision(amount, l.precision); err != nil {
		return model.Transaction{}, err
	}
	return model.NewTransaction(kind, id, amount, detail)
}

// ListTransactions yields journal entries in the order they were accepted.
func (l *Ledger) ListTransactions() iter.Seq[model.Transaction] {
	return func(yield func(model.Transaction) bool) {
		for i := 0; ; i++ {
			l.mu.RLock()
			if i >= len(l.journal) {
				l.mu.RUnlock()
				return
			}
			transaction := l.journal[i]
			l.mu.RUnlock()

			if !yield(transaction) {
				return
			}
		}
	}
}

func (l *Ledger) TransactionCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.journal)
}

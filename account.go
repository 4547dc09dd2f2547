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
	"iter"

	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/ledgerlite/ledgererr"
	"github.com/jerry-enebeli/ledgerlite/model"
)

const createdDetail = "new account created"

// CreateAccount registers a new account and journals a Create entry holding
// the initial balance.
func (l *Ledger) CreateAccount(id, ownerName string, initialBalance decimal.Decimal) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[id]; exists {
		return Outcome{}, reject(model.KindCreate, id,
			ledgererr.New(ledgererr.ErrDuplicateAccount, "Account ID already exists!", id))
	}

	account, err := model.NewAccount(id, ownerName, initialBalance)
	if err != nil {
		return Outcome{}, reject(model.KindCreate, id, err)
	}
	if err := model.CheckPrecision(initialBalance, l.precision); err != nil {
		return Outcome{}, reject(model.KindCreate, id, err)
	}

	transaction, err := model.NewTransaction(model.KindCreate, id, initialBalance, createdDetail)
	if err != nil {
		return Outcome{}, reject(model.KindCreate, id, err)
	}

	l.accounts[id] = account
	l.order = append(l.order, id)
	transaction = l.record(transaction)

	return l.outcome(transaction, account), nil
}

// Account returns a read-only view of the account with the given id.
func (l *Ledger) Account(id string) (model.AccountView, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[id]
	if !ok {
		return model.AccountView{}, false
	}
	return account.View(), true
}

// ListAccounts yields account views in the order the accounts were created.
// Each view is taken under the read lock; the lock is not held while the
// caller's loop body runs.
func (l *Ledger) ListAccounts() iter.Seq[model.AccountView] {
	return func(yield func(model.AccountView) bool) {
		for i := 0; ; i++ {
			l.mu.RLock()
			if i >= len(l.order) {
				l.mu.RUnlock()
				return
			}
			view := l.accounts[l.order[i]].View()
			l.mu.RUnlock()

			if !yield(view) {
				return
			}
		}
	}
}

func (l *Ledger) AccountCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// lookup returns the account or an ACCOUNT_NOT_FOUND error. Callers hold the lock.
func (l *Ledger) lookup(id string, message string) (*model.Account, error) {
	account, ok := l.accounts[id]
	if !ok {
		return nil, ledgererr.New(ledgererr.ErrAccountNotFound, message, id)
	}
	return account, nil
}

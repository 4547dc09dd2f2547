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
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/ledgerlite/config"
	"github.com/jerry-enebeli/ledgerlite/ledgererr"
	"github.com/jerry-enebeli/ledgerlite/model"
)

// Ledger owns the account registry and the transaction journal. One mutex
// guards both, so every public operation is a single critical section.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
	order    []string
	journal  []model.Transaction

	precision          int32
	suggestionsEnabled bool
	suggestionDistance int
}

// NewLedger creates an empty ledger. A nil configuration means defaults.
func NewLedger(cnf *config.Configuration) *Ledger {
	return &Ledger{
		accounts:           make(map[string]*model.Account),
		precision:          cnf.PrecisionOrDefault(),
		suggestionsEnabled: cnf.SuggestionsEnabled(),
		suggestionDistance: cnf.SuggestionDistance(),
	}
}

// Precision is the number of decimal places amounts may carry.
func (l *Ledger) Precision() int32 {
	return l.precision
}

// record appends a transaction to the journal. Callers hold the write lock.
func (l *Ledger) record(transaction model.Transaction) model.Transaction {
	transaction.Sequence = len(l.journal) + 1
	l.journal = append(l.journal, transaction)

	logrus.WithFields(logrus.Fields{
		"transaction_id": transaction.TransactionID,
		"kind":           transaction.Kind,
		"account_id":     transaction.AccountID,
		"amount":         transaction.Amount.String(),
		"minor_units":    model.ToMinorUnits(transaction.Amount, l.precision),
	}).Info("transaction recorded")
	return transaction
}

// reject logs a refused operation and returns err untouched.
func reject(kind model.TransactionKind, accountID string, err error) error {
	logrus.WithFields(logrus.Fields{
		"kind":       kind,
		"account_id": accountID,
		"code":       ledgererr.CodeOf(err),
	}).Debug(ledgererr.Message(err))
	return err
}

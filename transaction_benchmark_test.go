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
	"io"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// setupBenchmarkLedger builds a ledger with n funded accounts and silences logging.
func setupBenchmarkLedger(b *testing.B, n int) *Ledger {
	b.Helper()
	logrus.SetOutput(io.Discard)
	b.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	l := NewLedger(nil)
	for i := 0; i < n; i++ {
		if _, err := l.CreateAccount(fmt.Sprintf("bench-%d", i), "Benchmark Owner", decimal.NewFromInt(1_000_000)); err != nil {
			b.Fatalf("creating account: %v", err)
		}
	}
	return l
}

func BenchmarkDeposit(b *testing.B) {
	l := setupBenchmarkLedger(b, 1)
	amount := decimal.RequireFromString("0.01")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Deposit("bench-0", amount); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransfer(b *testing.B) {
	l := setupBenchmarkLedger(b, 2)
	amount := decimal.RequireFromString("0.01")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from, to := "bench-0", "bench-1"
		if i%2 == 1 {
			from, to = to, from
		}
		if _, err := l.Transfer(from, to, amount); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkListTransactions(b *testing.B) {
	l := setupBenchmarkLedger(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for range l.ListTransactions() {
			count++
		}
		if count != 1000 {
			b.Fatalf("expected 1000 transactions, got %d", count)
		}
	}
}

func BenchmarkSuggestAccountID(b *testing.B) {
	l := setupBenchmarkLedger(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.SuggestAccountID("bench-99x")
	}
}

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

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerry-enebeli/ledgerlite"
	"github.com/jerry-enebeli/ledgerlite/config"
)

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func runATM(t *testing.T, input string) (*ledgerInstance, string) {
	t.Helper()
	cnf := &config.Configuration{ProjectName: "Test ATM"}
	app := &ledgerInstance{ledger: ledgerlite.NewLedger(cnf), cnf: cnf}

	var out bytes.Buffer
	require.NoError(t, newATM(app, strings.NewReader(input), &out).run())
	return app, out.String()
}

func TestATM_FullSession(t *testing.T) {
	alice, carol := gofakeit.Name(), gofakeit.Name()
	app, out := runATM(t, lines(
		"1", "A1", alice, "100",
		"1", "A1", "Bob", "50",
		"2", "A1", "50",
		"3", "A1", "1000",
		"1", "A2", carol, "0",
		"4", "A1", "A2", "150",
		"4", "A1", "A1", "10",
		"5",
		"6",
		"7",
	))

	assert.Contains(t, out, "========= Welcome to Test ATM =========")
	assert.Contains(t, out, "Account created successfully!")
	assert.Contains(t, out, "Account ID already exists!")
	assert.Contains(t, out, "Deposit successful. New balance: 150.00")
	assert.Contains(t, out, "Insufficient balance!")
	assert.Contains(t, out, "Transfer successful!\nSender balance: 0.00 | Receiver balance: 150.00")
	assert.Contains(t, out, "Cannot transfer to the same account!")
	assert.Contains(t, out, "--- All Accounts ---")
	assert.Contains(t, out, "Owner Name   : "+carol)
	assert.Contains(t, out, "--- Transaction History ---")
	assert.Contains(t, out, "Details: transferred to A2")
	assert.Contains(t, out, "Total Accounts: 2")
	assert.Contains(t, out, "Total Transactions: 4")
	assert.Contains(t, out, "Thank you for using Test ATM. Goodbye!")

	assert.Equal(t, 2, app.ledger.AccountCount())
	assert.Equal(t, 4, app.ledger.TransactionCount())
}

func TestATM_BadInput(t *testing.T) {
	app, out := runATM(t, lines(
		"abc",
		"9",
		"1", "A1", "Alice", "lots",
		"2", "A1", "ten",
		"7",
	))

	assert.Contains(t, out, "Invalid input! Please enter a number.")
	assert.Contains(t, out, "Invalid choice! Please enter 1-7.")
	assert.Contains(t, out, "Invalid balance amount!")
	assert.Contains(t, out, "Invalid amount!")
	assert.Equal(t, 0, app.ledger.AccountCount())
}

func TestATM_EmptyListings(t *testing.T) {
	_, out := runATM(t, lines("5", "6", "7"))

	assert.Contains(t, out, "No accounts found.")
	assert.Contains(t, out, "No transactions found.")
}

func TestATM_DidYouMean(t *testing.T) {
	_, out := runATM(t, lines(
		"1", "ACC-100", "Alice", "10",
		"2", "ACC-10", "5",
		"4", "ACC-100", "SAV-1", "5",
		"7",
	))

	assert.Contains(t, out, "Account not found!\nDid you mean ACC-100?")
	assert.Contains(t, out, "One or both accounts not found!")
	assert.NotContains(t, out, "Did you mean SAV")
}

func TestATM_EndOfInputActsAsExit(t *testing.T) {
	app, out := runATM(t, lines("1", "A1", "Alice", "10"))

	assert.Contains(t, out, "Account created successfully!")
	assert.Contains(t, out, "Total Accounts: 1")
	assert.Equal(t, 1, app.ledger.TransactionCount())
}

func TestATM_EndOfInputMidPrompt(t *testing.T) {
	_, out := runATM(t, "2\nA1\n")
	assert.Contains(t, out, "Total Transactions: 0")
}

func TestCLI_RunsATMWithConfigFile(t *testing.T) {
	cli := NewCLI()
	var out bytes.Buffer
	cli.cmd.SetIn(strings.NewReader(lines("1", "A1", "Alice", "10.5", "7")))
	cli.cmd.SetOut(&out)
	cli.cmd.SetArgs([]string{"atm", "--config", filepath.Join(t.TempDir(), "missing.json")})

	require.NoError(t, cli.cmd.Execute())
	assert.Contains(t, out.String(), "Welcome to "+config.DEFAULT_PROJECT_NAME)
	assert.Contains(t, out.String(), "Account created successfully!")
}

func TestCLI_ConfigCommand(t *testing.T) {
	cli := NewCLI()
	var out bytes.Buffer
	cli.cmd.SetOut(&out)
	cli.cmd.SetArgs([]string{"config", "--config", filepath.Join(t.TempDir(), "missing.json")})

	require.NoError(t, cli.cmd.Execute())
	assert.Contains(t, out.String(), `"precision": 2`)
	assert.Contains(t, out.String(), `"project_name": "`+config.DEFAULT_PROJECT_NAME+`"`)
}

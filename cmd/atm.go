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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/ledgerlite"
	"github.com/jerry-enebeli/ledgerlite/ledgererr"
	"github.com/jerry-enebeli/ledgerlite/model"
)

const (
	choiceCreate = iota + 1
	choiceDeposit
	choiceWithdraw
	choiceTransfer
	choiceAccounts
	choiceHistory
	choiceExit
)

// errEndOfInput ends the menu loop when stdin is exhausted.
var errEndOfInput = errors.New("end of input")

type atm struct {
	ledger  *ledgerlite.Ledger
	project string
	in      *bufio.Scanner
	out     io.Writer
}

func newATM(app *ledgerInstance, in io.Reader, out io.Writer) *atm {
	return &atm{
		ledger:  app.ledger,
		project: app.cnf.ProjectName,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func atmCommands(app *ledgerInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "atm",
		Short: "start the interactive ATM menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newATM(app, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}
}

func (a *atm) run() error {
	fmt.Fprintf(a.out, "========= Welcome to %s =========\n", a.project)

	for {
		a.printMenu()
		line, err := a.prompt("Enter choice: ")
		if err != nil {
			return a.exit(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input! Please enter a number.")
			continue
		}

		switch choice {
		case choiceCreate:
			err = a.createAccount()
		case choiceDeposit:
			err = a.deposit()
		case choiceWithdraw:
			err = a.withdraw()
		case choiceTransfer:
			err = a.transfer()
		case choiceAccounts:
			a.showAccounts()
		case choiceHistory:
			a.showTransactions()
		case choiceExit:
			return a.exit(nil)
		default:
			fmt.Fprintln(a.out, "Invalid choice! Please enter 1-7.")
		}
		if err != nil {
			return a.exit(err)
		}
	}
}

func (a *atm) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "1. Create Account")
	fmt.Fprintln(a.out, "2. Deposit Money")
	fmt.Fprintln(a.out, "3. Withdraw Money")
	fmt.Fprintln(a.out, "4. Transfer Money")
	fmt.Fprintln(a.out, "5. Show All Accounts")
	fmt.Fprintln(a.out, "6. View Transaction History")
	fmt.Fprintln(a.out, "7. Exit")
}

// prompt prints label and returns the next trimmed input line.
func (a *atm) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// promptAmount reads a decimal amount. ok is false when the input does not
// parse, in which case invalidMsg has already been printed.
func (a *atm) promptAmount(label, invalidMsg string) (decimal.Decimal, bool, error) {
	line, err := a.prompt(label)
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		fmt.Fprintln(a.out, invalidMsg)
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

func (a *atm) createAccount() error {
	id, err := a.prompt("Enter Account ID: ")
	if err != nil {
		return err
	}
	name, err := a.prompt("Enter Owner Name: ")
	if err != nil {
		return err
	}
	balance, ok, err := a.promptAmount("Enter Initial Balance: ", "Invalid balance amount!")
	if err != nil || !ok {
		return err
	}

	a.report(a.ledger.CreateAccount(id, name, balance))
	return nil
}

func (a *atm) deposit() error {
	id, err := a.prompt("Enter Account ID: ")
	if err != nil {
		return err
	}
	amount, ok, err := a.promptAmount("Enter Deposit Amount: ", "Invalid amount!")
	if err != nil || !ok {
		return err
	}

	a.report(a.ledger.Deposit(id, amount))
	return nil
}

func (a *atm) withdraw() error {
	id, err := a.prompt("Enter Account ID: ")
	if err != nil {
		return err
	}
	amount, ok, err := a.promptAmount("Enter Withdrawal Amount: ", "Invalid amount!")
	if err != nil || !ok {
		return err
	}

	a.report(a.ledger.Withdraw(id, amount))
	return nil
}

func (a *atm) transfer() error {
	fromID, err := a.prompt("Enter Sender Account ID: ")
	if err != nil {
		return err
	}
	toID, err := a.prompt("Enter Receiver Account ID: ")
	if err != nil {
		return err
	}
	amount, ok, err := a.promptAmount("Enter Transfer Amount: ", "Invalid amount!")
	if err != nil || !ok {
		return err
	}

	a.report(a.ledger.Transfer(fromID, toID, amount))
	return nil
}

// report prints the outcome of a ledger call, or its error followed by a
// "did you mean" hint when an id was not found.
func (a *atm) report(outcome ledgerlite.Outcome, err error) {
	if err == nil {
		fmt.Fprintln(a.out, outcome.Message())
		return
	}

	fmt.Fprintln(a.out, ledgererr.Message(err))

	var lerr ledgererr.Error
	if !errors.As(err, &lerr) || lerr.Code != ledgererr.ErrAccountNotFound {
		return
	}
	missing, _ := lerr.Details.(string)
	if suggestion, ok := a.ledger.SuggestAccountID(missing); ok {
		fmt.Fprintf(a.out, "Did you mean %s?\n", suggestion)
	}
}

func (a *atm) showAccounts() {
	if a.ledger.AccountCount() == 0 {
		fmt.Fprintln(a.out, "No accounts found.")
		return
	}
	fmt.Fprintln(a.out, "\n--- All Accounts ---")
	for view := range a.ledger.ListAccounts() {
		fmt.Fprint(a.out, formatAccount(view, a.ledger.Precision()))
		fmt.Fprintln(a.out, "--------------------------")
	}
}

func (a *atm) showTransactions() {
	if a.ledger.TransactionCount() == 0 {
		fmt.Fprintln(a.out, "No transactions found.")
		return
	}
	fmt.Fprintln(a.out, "\n--- Transaction History ---")
	for transaction := range a.ledger.ListTransactions() {
		fmt.Fprintln(a.out, formatTransaction(transaction, a.ledger.Precision()))
	}
}

func (a *atm) exit(cause error) error {
	if cause != nil && !errors.Is(cause, errEndOfInput) {
		logrus.WithError(cause).Error("reading input")
		return cause
	}
	fmt.Fprintln(a.out, "\n===== Summary =====")
	fmt.Fprintf(a.out, "Total Accounts: %d\n", a.ledger.AccountCount())
	fmt.Fprintf(a.out, "Total Transactions: %d\n", a.ledger.TransactionCount())
	fmt.Fprintf(a.out, "\nThank you for using %s. Goodbye!\n", a.project)
	return nil
}

func formatAccount(view model.AccountView, precision int32) string {
	return fmt.Sprintf("Account ID   : %s\nOwner Name   : %s\nBalance      : %s\n",
		view.AccountID, view.OwnerName, model.FormatAmount(view.Balance, precision))
}

func formatTransaction(transaction model.Transaction, precision int32) string {
	return fmt.Sprintf("#%d %s\nTransaction Type: %s\nAccount ID: %s\nAmount: %s\nDetails: %s\n",
		transaction.Sequence,
		transaction.CreatedAt.Format("2006-01-02 15:04:05"),
		transaction.Kind,
		transaction.AccountID,
		model.FormatAmount(transaction.Amount, precision),
		transaction.Detail)
}

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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/ledgerlite"
	"github.com/jerry-enebeli/ledgerlite/config"
)

// LedgerLite represents the CLI application, encapsulating the root Cobra command.
type LedgerLite struct {
	cmd *cobra.Command
}

// ledgerInstance holds the ledger and configuration built by preRun and
// shared by every subcommand.
type ledgerInstance struct {
	ledger *ledgerlite.Ledger
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration, applies the logging settings and builds a
// fresh in-memory ledger before any command runs.
func preRun(app *ledgerInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(*configFile); err != nil {
			return errors.Wrap(err, "error loading config")
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}
		cnf.ConfigureLogger()

		app.ledger = ledgerlite.NewLedger(cnf)
		app.cnf = cnf

		logrus.WithFields(logrus.Fields{
			"project":   cnf.ProjectName,
			"precision": cnf.PrecisionOrDefault(),
		}).Debug("ledger ready")
		return nil
	}
}

// NewCLI creates the command-line interface. Running the binary without a
// subcommand starts the interactive ATM menu.
func NewCLI() *LedgerLite {
	var configFile string
	app := &ledgerInstance{}

	rootCmd := &cobra.Command{
		Use:          "ledgerlite",
		Short:        "In-memory account ledger with an ATM style menu",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newATM(app, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./ledgerlite.json", "Configuration file for ledgerlite")
	rootCmd.PersistentPreRunE = preRun(app, &configFile)

	rootCmd.AddCommand(atmCommands(app))
	rootCmd.AddCommand(configCommands(app))

	return &LedgerLite{cmd: rootCmd}
}

func (w LedgerLite) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}

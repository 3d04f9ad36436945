// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// intitan is an arbitrary-precision hex calculator built on the integer
// package. The CLI is a thin demonstration harness; programs that need the
// numeric type embed github.com/33cn/intitan/integer directly.
package main

import (
	"fmt"
	"os"

	"github.com/33cn/intitan/commands"
	"github.com/33cn/intitan/common/config"
	clog "github.com/33cn/intitan/common/log"
	"github.com/spf13/cobra"
)

var configPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "intitan",
		Short:             "intitan arbitrary-precision integer calculator",
		PersistentPreRunE: loadConfig,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "conf", "f", "", "config file (TOML)")
	cmd.AddCommand(
		commands.EvalCmd(),
		commands.CalcCmd(),
		commands.VersionCmd(),
	)
	return cmd
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	clog.SetLogLevel(cfg.LogLevel)
	commands.SetConfig(cfg)
	return nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

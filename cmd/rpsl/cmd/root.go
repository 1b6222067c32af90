/*
 * Copyright 2023 The gorpsl authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/irrkit/gorpsl/cmd/rpsl/cmd/cat"
	"github.com/irrkit/gorpsl/cmd/rpsl/cmd/check"
	"github.com/irrkit/gorpsl/cmd/rpsl/cmd/ls"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	cfgFile  string
	logLevel string
}

// NewCommand returns a new cobra.Command implementing the root command for rpsl
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "rpsl",
		Short: "Inspect and validate RPSL objects",
		Long: `rpsl parses RPSL (RFC 2622) text, as stored in IRR database dumps or
returned by whois servers, and lists, re-renders or validates the objects it
contains.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() { c.init() })

	// Flags
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.rpsl.yaml)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Subcommands
	cmd.AddCommand(ls.NewCommand())
	cmd.AddCommand(cat.NewCommand())
	cmd.AddCommand(check.NewCommand())

	return cmd
}

// init reads in config file and ENV variables if set.
func (c *conf) init() {
	if c.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(c.cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".rpsl" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".rpsl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}

	if viper.IsSet("log-level") {
		c.logLevel = viper.GetString("log-level")
	}
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log.SetLevel(level)
}

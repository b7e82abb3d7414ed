/*
Copyright © 2021 Anton Brekhov <anton@abrekhov.ru>

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
package cmd

import (
	"context"
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys
const (
	keyRaw   = "raw"
	keyEvery = "every"
)

// settings holds what every subcommand shares: flags of the root command
// and the configuration read from file and environment.
type settings struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

func newRootCmd() *cobra.Command {
	s := &settings{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "pt",
		Short: "Progress tracking for long item-by-item jobs",
		Long: `pt reports elapsed time, projected total time and completion percentage
while it works through a known number of items.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			if s.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			return s.initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is $HOME/.progresstrack.yaml)")
	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Increase verbosity")
	cmd.PersistentFlags().Bool(keyRaw, false, "Report durations as raw seconds instead of [DD:][HH:]MM:SS")
	cmd.PersistentFlags().Int64(keyEvery, 1, "Redraw the progress line every N items")
	cobra.CheckErr(s.v.BindPFlag(keyRaw, cmd.PersistentFlags().Lookup(keyRaw)))
	cobra.CheckErr(s.v.BindPFlag(keyEvery, cmd.PersistentFlags().Lookup(keyEvery)))

	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(
		newVersionCmd(),
		newFormatCmd(),
		newParseCmd(),
		newSimulateCmd(s),
		newChecksumCmd(s),
	)
	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (s *settings) initConfig() error {
	s.v.SetEnvPrefix("PT")
	s.v.AutomaticEnv() // read in environment variables that match

	if s.cfgFile != "" {
		// Use config file from the flag.
		s.v.SetConfigFile(s.cfgFile)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", s.cfgFile, err)
		}
		log.Debugf("Using config file: %s", s.v.ConfigFileUsed())
		return nil
	}

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		log.Debugf("No home directory, skipping config file: %v", err)
		return nil
	}

	// Search config in home directory with name ".progresstrack" (without extension).
	s.v.AddConfigPath(home)
	s.v.SetConfigName(".progresstrack")

	// If a config file is found, read it in.
	if err := s.v.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", s.v.ConfigFileUsed())
	}
	return nil
}

// durationAsString reports whether progress lines use formatted durations.
func (s *settings) durationAsString() bool {
	return !s.v.GetBool(keyRaw)
}

// every returns the redraw interval in items, at least 1.
func (s *settings) every() int64 {
	n := s.v.GetInt64(keyEvery)
	if n < 1 {
		return 1
	}
	return n
}

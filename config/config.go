// Package config holds process-wide configuration for the sigil binaries.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance. Settings come from command-line flags,
// then SIGIL_-prefixed environment variables, then defaults.
type Config struct {
	v *viper.Viper
	// positional arguments left over after flag parsing
	args []string
}

func defaultViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("pretty", false)
	v.SetDefault("batch-workers", runtime.NumCPU())
	v.SetEnvPrefix("sigil")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load parses flags out of args (typically os.Args[1:]) and finishes
// initializing the config. Positional arguments are kept for Args.
func (c *Config) Load(args []string) error {
	c.v = defaultViper()

	fs := pflag.NewFlagSet("sigil", pflag.ContinueOnError)
	fs.Bool("debug", false, "debug logging")
	fs.Bool("pretty", false, "print solutions with box-drawing characters")
	fs.Int("batch-workers", runtime.NumCPU(), "how many puzzles to solve at once in batch mode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments that remained after Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// Set overrides a single setting; used by the shell's toggle commands.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AllSettings returns the settings for logging at startup.
func (c *Config) AllSettings() string {
	return fmt.Sprintf("%v", c.v.AllSettings())
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/logging/ctxlog"
)

// Config represents the defaults that may be supplied via a YAML file, eg:
//
//	first_day_of_week: monday
//	enable_outside_days: true
//	number_of_months: 2
//	transition_months: false
//	day_size: 39
//	display_format: 02.01.2006
type Config struct {
	FirstDayOfWeek    string `yaml:"first_day_of_week"`
	EnableOutsideDays bool   `yaml:"enable_outside_days"`
	NumberOfMonths    int    `yaml:"number_of_months"`
	TransitionMonths  *bool  `yaml:"transition_months"`
	DaySize           int    `yaml:"day_size"`
	DisplayFormat     string `yaml:"display_format"`
}

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'yaml configuration file supplying default values'"`
}

// firstDayOfWeek returns the first day of the week to use, the flag value
// takes precedence over the config value.
func (c Config) firstDayOfWeek(flag string) (time.Weekday, error) {
	val := flag
	if len(val) == 0 {
		val = c.FirstDayOfWeek
	}
	if len(val) == 0 {
		return time.Sunday, nil
	}
	return calendar.ParseWeekday(val)
}

// transitionMonths returns the flag value if set, then the config value if
// set, and finally def.
func (c Config) transitionMonths(flag optionalBool, def bool) bool {
	if c.TransitionMonths != nil {
		def = *c.TransitionMonths
	}
	return flag.or(def)
}

func (c Config) numberOfMonths(flag int) int {
	switch {
	case flag > 0:
		return flag
	case c.NumberOfMonths > 0:
		return c.NumberOfMonths
	}
	return 1
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config file %q: %w", filename, err)
	}
	return cfg, nil
}

// setup creates the logger and reads the config file specified by the
// common flags. The returned function must be called to release the logger.
func setup(ctx context.Context, cl *CommonFlags) (context.Context, Config, func(), error) {
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	cleanup := func() {
		_ = logger.Close()
	}
	cfg, err := loadConfig(ctx, cl.ConfigFile)
	if err != nil {
		cleanup()
		return ctx, Config{}, nil, err
	}
	ctxlog.Logger(ctx).Debug("configuration", "file", cl.ConfigFile, "config", cfg)
	return ctx, cfg, cleanup, nil
}

// optionalBool is a boolean flag that records whether it was specified
// on the command line so that a config file value is only used when it
// was not.
type optionalBool struct {
	value, set bool
}

// Set implements flag.Value.
func (b *optionalBool) Set(v string) error {
	if len(v) == 0 {
		return nil
	}
	val, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean value: %q", v)
	}
	b.value, b.set = val, true
	return nil
}

// String implements flag.Value.
func (b *optionalBool) String() string {
	if b == nil || !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

// IsBoolFlag allows the flag to be specified without a value.
func (b *optionalBool) IsBoolFlag() bool {
	return true
}

func (b *optionalBool) or(def bool) bool {
	if b.set {
		return b.value
	}
	return def
}

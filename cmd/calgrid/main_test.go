// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	out = buf
	defer func() { out = os.Stdout }()
	err := newCommandSet().DispatchWithArgs(context.Background(), "calgrid", args...)
	return buf.String(), err
}

func TestGrid(t *testing.T) {
	got, err := run(t, "grid", "--first-day=monday", "2026-10")
	if err != nil {
		t.Fatal(err)
	}
	want := `October 2026
Mo Tu We Th Fr Sa Su
 .  .  .  1  2  3  4
 5  6  7  8  9 10 11
12 13 14 15 16 17 18
19 20 21 22 23 24 25
26 27 28 29 30 31  .
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	got, err = run(t, "grid", "--outside-days", "--months=2", "2015-02-10")
	if err != nil {
		t.Fatal(err)
	}
	want = `February 2015
Su Mo Tu We Th Fr Sa
 1  2  3  4  5  6  7
 8  9 10 11 12 13 14
15 16 17 18 19 20 21
22 23 24 25 26 27 28

March 2015
Su Mo Tu We Th Fr Sa
 1  2  3  4  5  6  7
 8  9 10 11 12 13 14
15 16 17 18 19 20 21
22 23 24 25 26 27 28
29 30 31  1  2  3  4
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	if _, err := run(t, "grid", "--first-day=8", "2026-10"); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := run(t, "grid", "not-a-month"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestMonthsAndWidth(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"months", "2026-03", "1"}, "2026-02\n2026-03\n2026-04\n"},
		{[]string{"months", "--transition-months=false", "2026-03-15", "3"}, "2026-03\n2026-04\n2026-05\n"},
		{[]string{"width", "12"}, "111\n"},
		{[]string{"width"}, "300\n"},
	} {
		got, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.args, got, tc.want)
		}
	}
	if _, err := run(t, "months", "2026-03", "-1"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestParse(t *testing.T) {
	got, err := run(t, "parse", "--format=02.01.2006", "2020-02-29", "19.10.2026")
	if err != nil {
		t.Fatal(err)
	}
	want := "2020-02-29 2020-02-29 2020-02 Saturday\n19.10.2026 2026-10-19 2026-10 Monday\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = run(t, "parse", "2019-02-29", "10/19/2026", "garbage")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, val := range []string{`"2019-02-29"`, `"garbage"`} {
		if !strings.Contains(err.Error(), val) {
			t.Errorf("%v does not mention %v", err, val)
		}
	}
	if want := "10/19/2026 2026-10-19 2026-10 Monday\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "calgrid.yaml")
	cfg := `first_day_of_week: mo
enable_outside_days: true
day_size: 12
display_format: 02.01.2006
`
	if err := os.WriteFile(cfgFile, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "width", "--config="+cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	if want := "111\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = run(t, "grid", "--config="+cfgFile, "19.10.2026")
	if err != nil {
		t.Fatal(err)
	}
	want := `October 2026
Mo Tu We Th Fr Sa Su
28 29 30  1  2  3  4
 5  6  7  8  9 10 11
12 13 14 15 16 17 18
19 20 21 22 23 24 25
26 27 28 29 30 31  1
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// flags take precedence over the config file.
	got, err = run(t, "grid", "--config="+cfgFile, "--first-day=0", "2026-10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "October 2026\nSu Mo Tu We Th Fr Sa\n27 28 29 30  1  2  3\n") {
		t.Errorf("unexpected output: %s", got)
	}

	got, err = run(t, "grid", "--config="+cfgFile, "--outside-days=false", "2026-10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "October 2026\nMo Tu We Th Fr Sa Su\n .  .  .  1  2  3  4\n") {
		t.Errorf("unexpected output: %s", got)
	}

	if err := os.WriteFile(cfgFile, []byte("transition_months: false\n"), 0600); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"months", "--config=" + cfgFile, "2026-03", "1"}, "2026-03\n"},
		{[]string{"months", "--config=" + cfgFile, "--transition-months", "2026-03", "1"}, "2026-02\n2026-03\n2026-04\n"},
		{[]string{"grid", "--config=" + cfgFile, "--transition-months=true", "2026-03"}, "February 2026\n"},
	} {
		got, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("%v: got %q, want prefix %q", tc.args, got, tc.want)
		}
	}

	if err := os.WriteFile(cfgFile, []byte("unknown_field: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "width", "--config="+cfgFile); err == nil {
		t.Errorf("expected an error for an unknown config field")
	}
}

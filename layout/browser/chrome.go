// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package browser implements layout.Element and layout.Environment using
// a Chrome instance controlled via the Chrome DevTools Protocol,
// see github.com/chromedp.
package browser

import (
	"context"
	"os"
	"os/exec"
	"slices"

	"cloudeng.io/logging/ctxlog"
	"github.com/chromedp/chromedp"
	"github.com/go-json-experiment/json"
)

// Environment variables that select the CI configuration of Chrome.
const (
	// ChromeBinPathEnv names the Chrome binary to run. When set, Chrome is
	// started with AllocatorOptsForCI.
	ChromeBinPathEnv = "CHROME_BIN_PATH"
	// ChromeUserDataDirEnv optionally names the profile directory used
	// alongside ChromeBinPathEnv.
	ChromeUserDataDirEnv = "CHROME_USER_DATA_DIR"
)

// AllocatorOptsForCI are the ExecAllocator options used when
// ChromeBinPathEnv is set. Sandboxing is disabled.
var AllocatorOptsForCI = []chromedp.ExecAllocatorOption{
	chromedp.NoFirstRun,
	chromedp.NoDefaultBrowserCheck,
	chromedp.Flag("headless", "new"),
	chromedp.Flag("disable-background-networking", true),
	chromedp.Flag("disable-background-timer-throttling", true),
	chromedp.Flag("disable-backgrounding-occluded-windows", true),
	chromedp.Flag("disable-default-apps", true),
	chromedp.Flag("disable-dev-shm-usage", true),
	chromedp.Flag("disable-extensions", true),
	chromedp.Flag("disable-renderer-backgrounding", true),
	chromedp.Flag("disable-sync", true),
	chromedp.Flag("force-color-profile", "srgb"),
	chromedp.Flag("enable-automation", true),
	chromedp.Flag("password-store", "basic"),
	chromedp.Flag("use-mock-keychain", true),
	chromedp.DisableGPU,
	chromedp.NoSandbox,
	chromedp.Flag("disable-setuid-sandbox", true),
	chromedp.Flag("disable-crash-reporter", true),
	chromedp.Flag("disable-component-update", true),
}

// WithExecAllocator returns a chromedp context with an ExecAllocator that
// runs headless Chrome. If ChromeBinPathEnv is set the allocator is
// configured for CI using AllocatorOptsForCI and the binary it names.
func WithExecAllocator(ctx context.Context, extraExecAllocOpts ...chromedp.ExecAllocatorOption) (context.Context, func()) {
	logger := ctxlog.Logger(ctx)
	modifyCmd := func(cmd *exec.Cmd) {
		logger.Debug("starting chrome", "path", cmd.Path, "args", cmd.Args[1:])
	}
	chromeBin := os.Getenv(ChromeBinPathEnv)
	if len(chromeBin) == 0 {
		opts := slices.Clone(chromedp.DefaultExecAllocatorOptions[:])
		opts = append(opts, extraExecAllocOpts...)
		opts = append(opts, chromedp.ModifyCmdFunc(modifyCmd))
		return chromedp.NewExecAllocator(ctx, opts...)
	}
	logger.Warn("chrome sandboxing disabled", ChromeBinPathEnv, chromeBin)
	opts := []chromedp.ExecAllocatorOption{chromedp.ExecPath(chromeBin)}
	if dir := os.Getenv(ChromeUserDataDirEnv); len(dir) > 0 {
		opts = append(opts, chromedp.UserDataDir(dir))
	}
	opts = append(opts, AllocatorOptsForCI...)
	opts = append(opts, extraExecAllocOpts...)
	opts = append(opts, chromedp.ModifyCmdFunc(modifyCmd))
	return chromedp.NewExecAllocator(ctx, opts...)
}

// NewContext returns a chromedp context, and the function to release it,
// for a new tab in a newly started Chrome instance.
func NewContext(ctx context.Context, extraExecAllocOpts []chromedp.ExecAllocatorOption, opts ...chromedp.ContextOption) (context.Context, func()) {
	ctx, cancelA := WithExecAllocator(ctx, extraExecAllocOpts...)
	ctx, cancelB := chromedp.NewContext(ctx, opts...)
	return ctx, func() {
		cancelB()
		cancelA()
	}
}

// Open is like NewContext but also navigates the new tab to url.
func Open(ctx context.Context, url string) (context.Context, func(), error) {
	ctx, cancel := NewContext(ctx, nil)
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		cancel()
		return nil, nil, err
	}
	ctxlog.Logger(ctx).Info("opened page", "url", url)
	return ctx, cancel, nil
}

// jsString returns val quoted as a javascript string literal.
func jsString(val string) string {
	buf, err := json.Marshal(val)
	if err != nil {
		return `""`
	}
	return string(buf)
}

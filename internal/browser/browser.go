// Package browser defines the host platform API this module delegates to
// and thin helpers over it. Implementations live with the embedder; tests
// use a stub.
package browser

import (
	"context"
	"errors"
)

// ErrNoActiveTab is returned by CurrentTab when the current window has no
// active tab.
var ErrNoActiveTab = errors.New("browser: no active tab")

// WindowStateFullscreen is the window state reported for fullscreen windows.
const WindowStateFullscreen = "fullscreen"

// PlatformInfo describes the host platform.
type PlatformInfo struct {
	OS   string
	Arch string
}

// Window describes a host window.
type Window struct {
	ID    int
	State string
}

// Tab describes a host tab.
type Tab struct {
	ID       int
	WindowID int
	Active   bool
	URL      string
	Title    string
}

// TabQuery selects tabs. Nil fields are wildcards.
type TabQuery struct {
	Active        *bool
	CurrentWindow *bool
}

// API is the host platform collaborator. Failures propagate to callers
// unchanged; this module adds no retry or translation.
type API interface {
	GetPlatformInfo(ctx context.Context) (PlatformInfo, error)
	GetCurrentWindow(ctx context.Context) (Window, error)
	QueryTabs(ctx context.Context, query TabQuery) ([]Tab, error)
	ActivateTab(ctx context.Context, tabID int) error
}

func boolPtr(b bool) *bool { return &b }

// PlatformName returns the host operating system name.
func PlatformName(ctx context.Context, api API) (string, error) {
	info, err := api.GetPlatformInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.OS, nil
}

// CurrentTab returns the active tab of the current window.
func CurrentTab(ctx context.Context, api API) (Tab, error) {
	tabs, err := api.QueryTabs(ctx, TabQuery{
		Active:        boolPtr(true),
		CurrentWindow: boolPtr(true),
	})
	if err != nil {
		return Tab{}, err
	}
	if len(tabs) == 0 {
		return Tab{}, ErrNoActiveTab
	}
	return tabs[0], nil
}

// IsFullscreen reports whether the current window is in fullscreen mode.
func IsFullscreen(ctx context.Context, api API) (bool, error) {
	w, err := api.GetCurrentWindow(ctx)
	if err != nil {
		return false, err
	}
	return w.State == WindowStateFullscreen, nil
}

// FocusTab makes the given tab active.
func FocusTab(ctx context.Context, api API, tabID int) error {
	return api.ActivateTab(ctx, tabID)
}

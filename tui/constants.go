package tui

import "time"

// view represents different view states in the application
type view int

const (
	viewMain view = iota
	viewHelp
	viewHistory
	viewUpload
)

// focused represents which component of the main view currently has focus
type focused int

const (
	focusedInput focused = iota
	focusedResults
)

// Layout constants
const (
	sidebarWidth     = 36
	sidebarHistory   = 8
	inputHeight      = 3
	statusBarHeight  = 1
	minContentHeight = 10
)

const NotificationDuration = 3 * time.Second

const exportNameLength = 40

package resizable

import (
	"errors"

	"github.com/grindlemire/go-resizable/internal/layout"
)

var (
	// Errors related to panel definitions
	ErrInvalidConstraint = layout.ErrInvalidConstraint
	ErrInvalidInput      = layout.ErrInvalidInput
	ErrDuplicatePanel    = errors.New("panel already registered")
	ErrUnknownPanel      = errors.New("unknown panel")

	// Errors related to drag sessions
	ErrInvalidBoundary   = errors.New("boundary out of range")
	ErrAlreadyResizing   = errors.New("resize already in progress")
	ErrNotResizing       = errors.New("no resize in progress")
	ErrDisabled          = errors.New("group is disabled")
	ErrPanelNotResizable = errors.New("panel is not resizable")
)

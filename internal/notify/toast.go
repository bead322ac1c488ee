// Package notify carries the transient notifications ("toasts") shown to the
// back-office user after every backend call.
package notify

import (
	"time"

	"github.com/talkincode/backoffice/pkg/common"
)

// Level toast severity
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is a single transient notification
type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Entity    string    `json:"entity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewToast builds a toast with a fresh id and the current time
func NewToast(level Level, entity, title, message string) Toast {
	return Toast{
		ID:        common.UUID(),
		Level:     level,
		Title:     title,
		Message:   message,
		Entity:    entity,
		CreatedAt: time.Now(),
	}
}

func Success(entity, title string) Toast {
	return NewToast(LevelSuccess, entity, title, "")
}

func Error(entity, title string, err error) Toast {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return NewToast(LevelError, entity, title, msg)
}

func Info(entity, title, message string) Toast {
	return NewToast(LevelInfo, entity, title, message)
}

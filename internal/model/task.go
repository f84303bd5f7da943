package model

import (
	"strings"
	"time"
)

// Task represents a single todo item
type Task struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Body  string     `json:"body"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

// NewTask builds a task with trimmed text fields. The ID is assigned by the
// store on creation.
func NewTask(title, body string, dueAt *time.Time) Task {
	return Task{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
		DueAt: dueAt,
	}
}

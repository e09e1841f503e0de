// Package notify delivers the user-visible outcome of each dashboard search.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID          string    `json:"id" example:"6f1c1c9e-6d0a-4a8e-9b8e-2f3c1f5b7a10"`
	Kind        Kind      `json:"kind" example:"success"`
	Title       string    `json:"title" example:"Weather data loaded"`
	Description string    `json:"description" example:"Successfully loaded weather for Paris"`
	City        string    `json:"city" example:"Paris"`
	At          time.Time `json:"at"`
}

func New(kind Kind, title, description, city string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		City:        city,
		At:          time.Now().UTC(),
	}
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Fanout delivers to every notifier; one failing does not stop the rest.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range f {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

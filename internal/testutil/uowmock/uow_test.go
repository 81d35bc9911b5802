package uowmock

import (
	"context"
	"errors"
	"testing"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/uow"
	"credit-engine/internal/testutil/applicationmock"
)

func TestUoW_UnfilledReturnsUnimplemented(t *testing.T) {
	m := New()
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("expected errUnimplemented, got %v", err)
	}
}

func TestUoW_FilledDelegates(t *testing.T) {
	called := false
	m := New()
	m.WithinTxFn = func(ctx context.Context, fn func(uow.Repos) error) error {
		called = true
		return fn(uow.Repos{})
	}
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("WithinTxFn was not invoked")
	}
}

func TestPassthrough_LoadsLockedApplication(t *testing.T) {
	apps := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*application.Application, error) {
			return &application.Application{ApplicationID: id, Status: application.StatusDraft}, nil
		},
	}
	m := Passthrough(uow.Repos{Applications: apps})

	var got string
	err := m.WithinApplicationTx(context.Background(), "abc", func(r uow.Repos, a *application.Application) error {
		got = a.ApplicationID
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Fatalf("loaded application %q, want %q", got, "abc")
	}
}

func TestPassthrough_PropagatesLoadError(t *testing.T) {
	m := Passthrough(uow.Repos{Applications: &applicationmock.Repo{}})
	err := m.WithinApplicationTx(context.Background(), "missing", func(uow.Repos, *application.Application) error {
		t.Fatal("fn must not run when load fails")
		return nil
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

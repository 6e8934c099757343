// Package queries contains read-only operations on orders.
// Queries never change state: they open a unit of work only to read a consistent view
// and always roll it back.
package queries

import (
	"context"

	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"
)

type (
	// ReadUoW is the part of a unit of work queries need.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.OrderRepository
	}

	// ReadUoWFactory creates new read units of work.
	ReadUoWFactory interface {
		Create() ReadUoW
	}

	// DryRunner validates an operation without applying it.
	// *validation.Validator implements it.
	DryRunner interface {
		Validate(ctx context.Context, req services.Request) (services.Verdict, error)
	}
)

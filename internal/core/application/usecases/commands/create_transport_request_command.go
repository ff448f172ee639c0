package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/guard"
)

var ErrCreateTransportRequestCommandIsNotConstructed = errors.New(
	"CreateTransportRequestCommand must be created via NewCreateTransportRequestCommand constructor",
)

type CreateTransportRequestCommand struct {
	actor     access.User
	content   request.Content
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateTransportRequestCommand validates the content against the rules
// of its transport type, including the delivery date not lying in the past.
func NewCreateTransportRequestCommand(
	actor access.User,
	content request.Content,
	createdAt time.Time,
) (CreateTransportRequestCommand, error) {
	if err := requireActor(actor); err != nil {
		return CreateTransportRequestCommand{}, err
	}

	draft, err := request.NewRequest(request.Requester{Email: actor.Email(), Name: actor.Name()}, content, createdAt)
	if err != nil {
		return CreateTransportRequestCommand{}, err
	}

	return CreateTransportRequestCommand{
		actor:     actor,
		content:   draft.Content(),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportRequestCommandIsNotConstructed)
}

func (c CreateTransportRequestCommand) Actor() access.User       { return c.actor }
func (c CreateTransportRequestCommand) Content() request.Content { return c.content }
func (c CreateTransportRequestCommand) CreatedAt() time.Time     { return c.createdAt }

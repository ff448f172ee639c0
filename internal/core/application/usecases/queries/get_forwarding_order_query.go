package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var ErrGetForwardingOrderQueryIsNotConstructed = errors.New(
	"GetForwardingOrderQuery must be created via NewGetForwardingOrderQuery constructor",
)

type GetForwardingOrderQuery struct {
	id int64

	guard guard.ConstructorGuard
}

func NewGetForwardingOrderQuery(id int64) (GetForwardingOrderQuery, error) {
	if id <= 0 {
		return GetForwardingOrderQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetForwardingOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetForwardingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetForwardingOrderQueryIsNotConstructed)
}

func (q GetForwardingOrderQuery) ID() int64 { return q.id }

type GetForwardingOrderQueryHandler struct {
	db     *sqlx.DB
	logger logrus.FieldLogger
}

func NewGetForwardingOrderQueryHandler(db *sqlx.DB, logger logrus.FieldLogger) GetForwardingOrderQueryHandler {
	return GetForwardingOrderQueryHandler{db: db, logger: logger.WithField("component", "get-forwarding-order")}
}

func (h GetForwardingOrderQueryHandler) Handle(ctx context.Context, query GetForwardingOrderQuery) (ForwardingOrderView, error) {
	if err := query.Validate(); err != nil {
		return ForwardingOrderView{}, err
	}

	var row forwardingOrderRow
	err := h.db.GetContext(ctx, &row,
		`SELECT `+forwardingOrderColumns+` FROM forwarding_orders WHERE id = $1`, query.ID())
	if errors.Is(err, sql.ErrNoRows) {
		return ForwardingOrderView{}, errs.NewObjectNotFoundError("forwardingOrder", query.ID())
	}
	if err != nil {
		return ForwardingOrderView{}, err
	}
	return row.toView(h.logger), nil
}

package queries

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ListForwardingOrdersQueryHandler struct {
	db     *sqlx.DB
	logger logrus.FieldLogger
}

func NewListForwardingOrdersQueryHandler(db *sqlx.DB, logger logrus.FieldLogger) ListForwardingOrdersQueryHandler {
	return ListForwardingOrdersQueryHandler{db: db, logger: logger.WithField("component", "list-forwarding-orders")}
}

func (h ListForwardingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListForwardingOrdersQuery,
) ([]ForwardingOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + forwardingOrderColumns + ` FROM forwarding_orders`
	var args []any
	if s := query.Status(); s != nil {
		sql += ` WHERE status = $1`
		args = append(args, s.String())
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	var rows []forwardingOrderRow
	if err := h.db.SelectContext(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}

	views := make([]ForwardingOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView(h.logger))
	}
	return views, nil
}

package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// TransportRequestView mirrors the stored request. Field names are the ones
// the edit operation accepts.
type TransportRequestView struct {
	ID                    int64      `db:"id" json:"id"`
	Status                string     `db:"status" json:"status"`
	TransportType         string     `db:"transport_type" json:"transport_type"`
	RequesterEmail        string     `db:"requester_email" json:"requester_email"`
	RequesterName         string     `db:"requester_name" json:"requester_name"`
	DestinationCity       string     `db:"destination_city" json:"destination_city"`
	DestinationPostalCode string     `db:"destination_postal_code" json:"destination_postal_code"`
	DestinationStreet     string     `db:"destination_street" json:"destination_street"`
	MPK                   string     `db:"mpk" json:"mpk"`
	ConstructionSiteID    *int64     `db:"construction_site_id" json:"construction_site_id"`
	ConstructionSite      string     `db:"construction_site" json:"construction_site"`
	ClientName            string     `db:"client_name" json:"client_name"`
	RealClientName        string     `db:"real_client_name" json:"real_client_name"`
	WZNumbers             string     `db:"wz_numbers" json:"wz_numbers"`
	MarketID              string     `db:"market_id" json:"market_id"`
	ContactPerson         string     `db:"contact_person" json:"contact_person"`
	ContactPhone          string     `db:"contact_phone" json:"contact_phone"`
	TransportDirection    string     `db:"transport_direction" json:"transport_direction"`
	GoodsDescription      string     `db:"goods_description" json:"goods_description"`
	DocumentNumbers       string     `db:"document_numbers" json:"document_numbers"`
	DeliveryDate          time.Time  `db:"delivery_date" json:"-"`
	Justification         string     `db:"justification" json:"justification"`
	Notes                 string     `db:"notes" json:"notes"`
	ApprovedBy            *string    `db:"approved_by" json:"approved_by"`
	ApprovedAt            *time.Time `db:"approved_at" json:"approved_at"`
	RejectionReason       *string    `db:"rejection_reason" json:"rejection_reason"`
	TransportID           *int64     `db:"transport_id" json:"transport_id"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`

	Date string `db:"-" json:"delivery_date"`
}

type ListTransportRequestsQueryHandler struct {
	db *sqlx.DB
}

func NewListTransportRequestsQueryHandler(db *sqlx.DB) ListTransportRequestsQueryHandler {
	return ListTransportRequestsQueryHandler{db: db}
}

func (h ListTransportRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListTransportRequestsQuery,
) ([]TransportRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if query.OwnOnly() {
		where = append(where, "LOWER(requester_email) = LOWER("+arg(query.Actor().Email())+")")
	}
	if s := query.Status(); s != nil {
		where = append(where, "status = "+arg(s.String()))
	}
	if d := query.DateFrom(); d != nil {
		where = append(where, "delivery_date >= "+arg(d.Format(time.DateOnly))+"::date")
	}
	if d := query.DateTo(); d != nil {
		where = append(where, "delivery_date <= "+arg(d.Format(time.DateOnly))+"::date")
	}

	sql := `SELECT * FROM transport_requests`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	views := []TransportRequestView{}
	if err := h.db.SelectContext(ctx, &views, sql, args...); err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Date = views[i].DeliveryDate.Format(time.DateOnly)
	}
	return views, nil
}

// Package requestrepo persists transport requests.
package requestrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
)

// RequestDTO is the transport_requests row. Column names match the field names
// accepted by the edit operation.
type RequestDTO struct {
	ID                    int64 `gorm:"primaryKey;autoIncrement"`
	Status                string
	TransportType         string
	RequesterEmail        string
	RequesterName         string
	DestinationCity       string
	DestinationPostalCode string
	DestinationStreet     string
	MPK                   string `gorm:"column:mpk"`
	ConstructionSiteID    *int64
	ConstructionSite      string
	ClientName            string
	RealClientName        string
	WZNumbers             string `gorm:"column:wz_numbers"`
	MarketID              string
	ContactPerson         string
	ContactPhone          string
	TransportDirection    string
	GoodsDescription      string
	DocumentNumbers       string
	DeliveryDate          time.Time `gorm:"type:date"`
	Justification         string
	Notes                 string
	ApprovedBy            *string
	ApprovedAt            *time.Time
	RejectionReason       *string
	TransportID           *int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (RequestDTO) TableName() string {
	return "transport_requests"
}

func fromDomain(r *request.Request) RequestDTO {
	c := r.Content()
	dto := RequestDTO{
		ID:                    r.ID(),
		Status:                r.Status().String(),
		TransportType:         c.TransportType.String(),
		RequesterEmail:        r.Requester().Email,
		RequesterName:         r.Requester().Name,
		DestinationCity:       c.DestinationCity,
		DestinationPostalCode: c.DestinationPostalCode,
		DestinationStreet:     c.DestinationStreet,
		MPK:                   c.CostCenter,
		ConstructionSiteID:    c.ConstructionSiteID,
		ConstructionSite:      c.ConstructionSite,
		ClientName:            c.ClientName,
		RealClientName:        c.RealClientName,
		WZNumbers:             c.DeliveryNotes,
		MarketID:              c.MarketID,
		ContactPerson:         c.ContactPerson,
		ContactPhone:          c.ContactPhone,
		TransportDirection:    c.Direction.String(),
		GoodsDescription:      c.GoodsDescription,
		DocumentNumbers:       c.DocumentNumbers,
		DeliveryDate:          c.DeliveryDate,
		Justification:         c.Justification,
		Notes:                 c.Notes,
		TransportID:           r.TransportID(),
		CreatedAt:             r.CreatedAt(),
		UpdatedAt:             r.UpdatedAt(),
	}

	if d := r.Decision(); d != nil {
		by, at := d.By, d.At
		dto.ApprovedBy = &by
		dto.ApprovedAt = &at
	}
	if reason := r.RejectionReason(); reason != "" {
		dto.RejectionReason = &reason
	}
	return dto
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	transportType, err := request.ParseType(dto.TransportType)
	if err != nil {
		return nil, err
	}

	content := request.Content{
		TransportType:         transportType,
		DestinationCity:       dto.DestinationCity,
		DestinationPostalCode: dto.DestinationPostalCode,
		DestinationStreet:     dto.DestinationStreet,
		CostCenter:            dto.MPK,
		ConstructionSiteID:    dto.ConstructionSiteID,
		ConstructionSite:      dto.ConstructionSite,
		ClientName:            dto.ClientName,
		RealClientName:        dto.RealClientName,
		DeliveryNotes:         dto.WZNumbers,
		MarketID:              dto.MarketID,
		ContactPerson:         dto.ContactPerson,
		ContactPhone:          dto.ContactPhone,
		Direction:             kernel.Direction(dto.TransportDirection),
		GoodsDescription:      dto.GoodsDescription,
		DocumentNumbers:       dto.DocumentNumbers,
		DeliveryDate:          dto.DeliveryDate,
		Justification:         dto.Justification,
		Notes:                 dto.Notes,
	}

	var decision *request.Decision
	if dto.ApprovedBy != nil && dto.ApprovedAt != nil {
		decision = &request.Decision{By: *dto.ApprovedBy, At: *dto.ApprovedAt}
	}
	reason := ""
	if dto.RejectionReason != nil {
		reason = *dto.RejectionReason
	}

	return request.RestoreRequest(
		dto.ID,
		status,
		request.Requester{Email: dto.RequesterEmail, Name: dto.RequesterName},
		content,
		decision,
		reason,
		dto.TransportID,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}

// Package transportrepo persists transports scheduled from approved requests.
package transportrepo

import (
	"time"

	"logistics/internal/core/domain/model/transport"
)

type TransportDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	Status          string
	DestinationCity string
	PostalCode      string
	Street          string
	DeliveryDate    time.Time `gorm:"type:date"`
	SourceWarehouse string
	MPK             string `gorm:"column:mpk"`
	ClientName      string
	RequesterName   string
	RequesterEmail  string
	WZNumber        string `gorm:"column:wz_number"`
	Market          string
	DistanceKm      int
	Notes           string
	LoadingLevel    string
	IsCyclical      bool
	RequestID       *int64
	CreatedAt       time.Time
}

func (TransportDTO) TableName() string {
	return "transports"
}

func fromDomain(t *transport.Transport) TransportDTO {
	p := t.Plan()
	dto := TransportDTO{
		ID:              t.ID(),
		Status:          t.Status(),
		DestinationCity: p.Destination.City(),
		PostalCode:      p.Destination.PostalCode(),
		Street:          p.Destination.Street(),
		DeliveryDate:    p.DeliveryDate,
		SourceWarehouse: p.SourceWarehouse.String(),
		MPK:             p.CostCenter,
		ClientName:      p.ClientName,
		RequesterName:   p.RequesterName,
		RequesterEmail:  p.RequesterEmail,
		WZNumber:        p.DeliveryNote,
		Market:          p.Market,
		DistanceKm:      p.DistanceKm,
		Notes:           p.Notes,
		LoadingLevel:    p.LoadingLevel,
		IsCyclical:      p.IsCyclical,
	}
	if p.RequestID > 0 {
		id := p.RequestID
		dto.RequestID = &id
	}
	return dto
}

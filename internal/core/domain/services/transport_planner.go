package services

import (
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/transport"
)

// TransportPlanner derives transport fields from a transport request.
//
// Business rules:
//   - A warehouse transfer is delivered to the warehouse opposite to the one
//     performing the pickup, at that warehouse's fixed address
//   - The transfer cost center comes from the request direction, whatever
//     warehouse performs it
//   - A standard request keeps its own destination, cost center and client,
//     preferring the real client name when present
type TransportPlanner struct{}

func NewTransportPlanner() TransportPlanner {
	return TransportPlanner{}
}

// Plan returns the transport to schedule for req, picked up at source.
func (p TransportPlanner) Plan(req *request.Request, source kernel.Warehouse) (transport.Plan, error) {
	if err := req.Validate(); err != nil {
		return transport.Plan{}, err
	}
	if err := source.Validate(); err != nil {
		return transport.Plan{}, err
	}

	c := req.Content()
	plan := transport.Plan{
		DeliveryDate:    c.DeliveryDate,
		SourceWarehouse: source,
		RequesterName:   req.Requester().Name,
		RequesterEmail:  req.Requester().Email,
		LoadingLevel:    transport.DefaultLoadingLevel,
		RequestID:       req.ID(),
	}

	if c.TransportType == request.TypeWarehouse {
		if err := c.Direction.Validate(); err != nil {
			return transport.Plan{}, err
		}
		destination := source.Other()
		plan.Destination = destination.Address()
		plan.CostCenter = c.Direction.CostCenter()
		plan.ClientName = kernel.TransferClientName
		plan.DeliveryNote = c.DocumentNumbers
		plan.Notes = fmt.Sprintf("Wniosek #%d: przesunięcie %s → %s. Towar: %s. Realizuje: %s",
			req.ID(),
			c.Direction.Source().DisplayName(),
			c.Direction.Destination().DisplayName(),
			c.GoodsDescription,
			source.DisplayName(),
		)
		return plan, nil
	}

	destination, malformedCode, err := destinationOf(c)
	if err != nil {
		return transport.Plan{}, err
	}
	plan.Destination = destination
	plan.CostCenter = c.CostCenter
	plan.ClientName = c.ClientName
	if strings.TrimSpace(c.RealClientName) != "" {
		plan.ClientName = c.RealClientName
	}
	plan.DeliveryNote = c.DeliveryNotes
	plan.Market = c.MarketID
	plan.Notes = fmt.Sprintf("Wniosek #%d", req.ID())
	if c.ConstructionSite != "" {
		plan.Notes += ". Budowa: " + c.ConstructionSite
	} else if c.ConstructionSiteID != nil {
		plan.Notes += fmt.Sprintf(". Budowa #%d", *c.ConstructionSiteID)
	}
	if malformedCode != "" {
		plan.Notes += ". Kod pocztowy: " + malformedCode
	}
	if c.Notes != "" {
		plan.Notes += ". " + c.Notes
	}
	return plan, nil
}

// destinationOf builds the request's destination. A postal code stored before
// it was validated is dropped from the address and returned separately so it
// is not lost.
func destinationOf(c request.Content) (kernel.Address, string, error) {
	destination, err := kernel.NewAddress(c.DestinationCity, c.DestinationPostalCode, c.DestinationStreet)
	if err == nil {
		return destination, "", nil
	}
	if kernel.ValidatePostalCode(c.DestinationPostalCode) == nil {
		return kernel.Address{}, "", err
	}
	destination, err = kernel.NewAddress(c.DestinationCity, "", c.DestinationStreet)
	if err != nil {
		return kernel.Address{}, "", err
	}
	return destination, strings.TrimSpace(c.DestinationPostalCode), nil
}

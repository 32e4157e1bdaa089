//go:build protogen

package catalog

import (
	"context"
	"time"

	"github.com/m-alharbi/aqarbook/libs/grpcx"
	catalogv1 "github.com/m-alharbi/aqarbook/protos/gen/catalog/v1"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/grid"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/tourtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type grpcProvider struct {
	client catalogv1.CatalogServiceClient
}

// NewGRPCProvider dials catalog-service. A nil provider (empty address)
// means the caller should fall back to the snapshot read model.
func NewGRPCProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: catalogv1.NewCatalogServiceClient(conn)}, nil
}

func (p *grpcProvider) BookingFacts(ctx context.Context, propertyID string) (Facts, error) {
	resp, err := p.client.GetBookingFacts(ctx, &catalogv1.BookingFactsRequest{PropertyId: propertyID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Facts{}, ErrNotFound
		}
		return Facts{}, err
	}

	facts := Facts{
		PropertyID: resp.GetPropertyId(),
		OwnerID:    resp.GetOwnerId(),
		Status:     resp.GetStatus(),
		Category:   resp.GetCategory(),
		OfferType:  resp.GetOfferType(),
		Currency:   resp.GetCurrency(),
		Insurance:  resp.Insurance,
	}
	for _, g := range resp.GetGroups() {
		ids := make([]int, 0, len(g.GetIds()))
		for _, id := range g.GetIds() {
			ids = append(ids, int(id))
		}
		facts.Groups = append(facts.Groups, grid.Group{
			IDs:         ids,
			Name:        g.GetName(),
			Color:       g.GetColor(),
			Description: g.GetDescription(),
			Price:       g.Price,
			Insurance:   g.Insurance,
			Area:        g.Area,
			Capacity:    int(g.GetCapacity()),
		})
	}
	for _, u := range resp.GetUnits() {
		facts.Units = append(facts.Units, UnitType{
			Type:  u.GetType(),
			Title: u.GetTitle(),
			Count: int(u.GetCount()),
		})
	}
	for _, w := range resp.GetTourWindows() {
		facts.Windows = append(facts.Windows, tourtime.Window{
			From: w.GetFrom().AsTime(),
			To:   w.GetTo().AsTime(),
		})
	}
	return facts, nil
}

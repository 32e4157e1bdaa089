//go:build protogen

package grpcserver

import (
	"context"

	catalogv1 "github.com/m-alharbi/aqarbook/protos/gen/catalog/v1"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type server struct {
	catalogv1.UnimplementedCatalogServiceServer
	repo *storage.PropertyRepository
}

func Register(grpcServer *grpc.Server, repo *storage.PropertyRepository) {
	catalogv1.RegisterCatalogServiceServer(grpcServer, &server{repo: repo})
}

func (s *server) GetBookingFacts(ctx context.Context, req *catalogv1.BookingFactsRequest) (*catalogv1.BookingFactsResponse, error) {
	if req.GetPropertyId() == "" {
		return nil, status.Error(codes.InvalidArgument, "property_id is required")
	}

	prop, err := s.repo.Get(ctx, req.GetPropertyId())
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "property not found")
		}
		return nil, status.Error(codes.Internal, "failed to load property")
	}

	resp := &catalogv1.BookingFactsResponse{
		PropertyId: prop.ID,
		OwnerId:    prop.OwnerID,
		Status:     prop.Status,
		Category:   prop.Category,
		OfferType:  prop.OfferType,
		Currency:   prop.Currency,
		Price:      prop.Price.Float(),
		Discount:   prop.Discount.Float(),
		Insurance:  prop.Insurance.Float(),
		Rates:      pbRates(prop.Rates),
	}
	for _, g := range prop.Groups {
		ids := make([]int32, 0, len(g.IDs))
		for _, id := range g.IDs {
			ids = append(ids, int32(id))
		}
		resp.Groups = append(resp.Groups, &catalogv1.SlotGroup{
			Ids:         ids,
			Name:        g.Name,
			Color:       g.Color,
			Description: g.Description,
			Price:       g.Price.Float(),
			Insurance:   g.Insurance.Float(),
			Area:        g.Area.Float(),
			Capacity:    int32(g.Capacity),
		})
	}
	for _, u := range prop.Units {
		resp.Units = append(resp.Units, &catalogv1.ApartmentUnit{
			Type:      u.Type,
			Title:     u.Title,
			Bedrooms:  int32(u.Bedrooms),
			Bathrooms: int32(u.Bathrooms),
			Capacity:  int32(u.Capacity),
			Count:     int32(u.Count),
			Rates:     pbRates(u.Rates),
		})
	}
	for _, w := range prop.Windows {
		resp.TourWindows = append(resp.TourWindows, &catalogv1.TourWindow{
			From: timestamppb.New(w.From),
			To:   timestamppb.New(w.To),
		})
	}
	return resp, nil
}

func pbRates(in []model.PeriodRate) []*catalogv1.PeriodRate {
	out := make([]*catalogv1.PeriodRate, 0, len(in))
	for _, r := range in {
		out = append(out, &catalogv1.PeriodRate{
			Period:  r.Period,
			Enabled: r.Enabled,
			Price:   r.Price.Float(),
		})
	}
	return out
}

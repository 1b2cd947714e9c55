package dashboard

import (
	"context"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
)

// TravelView is the spending per trip.
type TravelView struct {
	Trips []aggregate.Trip `json:"trips"`
	Total decimal.Decimal  `json:"total" example:"2340.50"`
}

// Travel returns the spending per trip, most recent trip first.
func (s *Service) Travel(ctx context.Context) (TravelView, error) {
	trips, err := s.source.Travel(ctx)
	if err != nil {
		return TravelView{}, done(ctx, err)
	}

	view := TravelView{Trips: trips, Total: decimal.Zero}
	for i := range view.Trips {
		view.Total = view.Total.Add(view.Trips[i].Total)
		view.Trips[i].Total = view.Trips[i].Total.Round(places)
	}
	view.Total = view.Total.Round(places)

	return view, nil
}

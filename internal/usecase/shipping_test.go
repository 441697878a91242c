package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/trangvu/shopmart/internal/adapter/geocode"
	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

var shopOrigin = model.GeoPoint{Lat: 20.9626, Lon: 105.7460}

func TestMethodByID(t *testing.T) {
	uc := NewShippingUseCase(testhelpers.GeocoderStub{}, shopOrigin)

	m, err := uc.MethodByID("standard")
	if err != nil {
		t.Fatalf("method lookup failed: %v", err)
	}
	if m.Price != 5 {
		t.Fatalf("unexpected standard fee: %v", m.Price)
	}

	if _, err := uc.MethodByID("teleport"); !errors.Is(err, domainErrors.ErrInvalidShippingMethod) {
		t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
	}
}

func TestMethodsCatalog(t *testing.T) {
	uc := NewShippingUseCase(testhelpers.GeocoderStub{}, shopOrigin)
	methods := uc.Methods()
	if len(methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(methods))
	}
	if methods[0].ID != "free" || methods[0].Price != 0 {
		t.Fatalf("unexpected first method: %+v", methods[0])
	}
}

func TestEstimateDistanceTiers(t *testing.T) {
	cases := []struct {
		name  string
		point model.GeoPoint
		fee   float64
	}{
		{"same point", shopOrigin, 0},
		{"nearby", model.GeoPoint{Lat: 20.99, Lon: 105.75}, 0},
		{"mid range", model.GeoPoint{Lat: 21.03, Lon: 105.85}, 2},
		{"far", model.GeoPoint{Lat: 21.30, Lon: 106.10}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testhelpers.GeocoderStub{
				Points: map[string]model.GeoPoint{
					"12 Quang Trung, Ha Dong, Hanoi": tc.point,
				},
			}
			uc := NewShippingUseCase(stub, shopOrigin)
			est, err := uc.Estimate(context.Background(), "12 Quang Trung", "Ha Dong", "Hanoi")
			if err != nil {
				t.Fatalf("estimate failed: %v", err)
			}
			if est.Fee != tc.fee {
				t.Fatalf("expected fee %v for %.2f km, got %v", tc.fee, est.DistanceKm, est.Fee)
			}
		})
	}
}

func TestEstimateFallbackQuery(t *testing.T) {
	var queries []string
	stub := testhelpers.GeocoderStub{
		SearchFn: func(_ context.Context, query string) (*model.GeoPoint, error) {
			queries = append(queries, query)
			if query == "Ha Dong, Hanoi" {
				return &model.GeoPoint{Lat: 20.97, Lon: 105.78}, nil
			}
			return nil, geocode.ErrNoMatch
		},
	}

	uc := NewShippingUseCase(stub, shopOrigin)
	est, err := uc.Estimate(context.Background(), "99 Nowhere Lane", "Ha Dong", "Hanoi")
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if est == nil || est.Fee != 0 {
		t.Fatalf("unexpected estimate: %+v", est)
	}
	if len(queries) != 2 || queries[0] != "99 Nowhere Lane, Ha Dong, Hanoi" || queries[1] != "Ha Dong, Hanoi" {
		t.Fatalf("unexpected query sequence: %v", queries)
	}
}

func TestEstimateAddressNotFound(t *testing.T) {
	stub := testhelpers.GeocoderStub{
		SearchFn: func(context.Context, string) (*model.GeoPoint, error) {
			return nil, geocode.ErrNoMatch
		},
	}
	uc := NewShippingUseCase(stub, shopOrigin)
	if _, err := uc.Estimate(context.Background(), "x", "y", "z"); !errors.Is(err, domainErrors.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestEstimateTransportError(t *testing.T) {
	netErr := errors.New("connection refused")
	stub := testhelpers.GeocoderStub{
		SearchFn: func(context.Context, string) (*model.GeoPoint, error) {
			return nil, netErr
		},
	}
	uc := NewShippingUseCase(stub, shopOrigin)
	_, err := uc.Estimate(context.Background(), "x", "y", "z")
	if !errors.Is(err, netErr) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Hanoi to Ho Chi Minh City is roughly 1130-1170 km.
	hanoi := model.GeoPoint{Lat: 21.0285, Lon: 105.8542}
	hcmc := model.GeoPoint{Lat: 10.8231, Lon: 106.6297}
	d := haversineKm(hanoi, hcmc)
	if d < 1100 || d > 1200 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/trangvu/shopmart/internal/adapter/geocode"
	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

// Distance fee tiers in kilometres from the shop origin.
const (
	nearRadiusKm = 5.0
	midRadiusKm  = 15.0

	nearDistanceFee = 0.0
	midDistanceFee  = 2.0
	farDistanceFee  = 5.0
)

const earthRadiusKm = 6371.0

// shippingMethods is the fixed set of delivery options.
var shippingMethods = []model.ShippingMethod{
	{ID: "free", Name: "Free Shipping", Price: 0, Description: "7-10 business days"},
	{ID: "standard", Name: "Standard Shipping", Price: 5, Description: "3-5 business days"},
	{ID: "fast", Name: "Fast Shipping", Price: 10, Description: "1-2 business days"},
}

// ShippingUseCase resolves delivery addresses to distance-based fees and
// exposes the available shipping methods.
type ShippingUseCase struct {
	geocoder geocode.Client
	origin   model.GeoPoint
}

// NewShippingUseCase constructs ShippingUseCase around a geocoding client and
// the shop origin.
func NewShippingUseCase(geocoder geocode.Client, origin model.GeoPoint) *ShippingUseCase {
	return &ShippingUseCase{geocoder: geocoder, origin: origin}
}

// Methods returns the selectable shipping methods.
func (u *ShippingUseCase) Methods() []model.ShippingMethod {
	out := make([]model.ShippingMethod, len(shippingMethods))
	copy(out, shippingMethods)
	return out
}

// MethodByID resolves a shipping method by its identifier.
func (u *ShippingUseCase) MethodByID(id string) (*model.ShippingMethod, error) {
	for _, m := range shippingMethods {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domainErrors.ErrInvalidShippingMethod
}

// Estimate geocodes a delivery address and derives the distance fee. The
// exact street-level query is tried first; when it yields nothing the lookup
// falls back to the district and city alone. Both coming up empty means the
// address cannot be resolved.
func (u *ShippingUseCase) Estimate(ctx context.Context, street, district, city string) (*model.ShippingEstimate, error) {
	point, err := u.geocoder.Search(ctx, joinAddress(street, district, city))
	if errors.Is(err, geocode.ErrNoMatch) {
		point, err = u.geocoder.Search(ctx, joinAddress("", district, city))
	}
	if errors.Is(err, geocode.ErrNoMatch) {
		return nil, domainErrors.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("geocode address: %w", err)
	}

	distance := haversineKm(u.origin, *point)
	return &model.ShippingEstimate{
		DistanceKm: distance,
		Fee:        distanceFee(distance),
	}, nil
}

func joinAddress(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func distanceFee(km float64) float64 {
	switch {
	case km < nearRadiusKm:
		return nearDistanceFee
	case km < midRadiusKm:
		return midDistanceFee
	default:
		return farDistanceFee
	}
}

// haversineKm returns the great-circle distance between two points.
func haversineKm(a, b model.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

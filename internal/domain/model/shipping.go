package model

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// ShippingMethod is a selectable delivery option with a base fee.
type ShippingMethod struct {
	ID          string
	Name        string
	Price       float64
	Description string
}

// ShippingEstimate is the result of resolving an address against the shop
// origin: great-circle distance plus the distance-derived fee tier.
type ShippingEstimate struct {
	DistanceKm float64
	Fee        float64
}

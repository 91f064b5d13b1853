package entities

import "time"

// GeoPoint — пара (долгота, широта) в системе координат WGS84.
type GeoPoint struct {
	Lon float64
	Lat float64
}

// RouteSummary — сводка быстрейшего маршрута от провайдера маршрутизации.
type RouteSummary struct {
	DistanceMeters int64
	DurationMs     int64
}

func (r RouteSummary) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

func (r RouteSummary) DistanceKm() float64 {
	return float64(r.DistanceMeters) / 1000.0
}

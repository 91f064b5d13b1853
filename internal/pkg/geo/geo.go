package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"service/internal/entities"
)

// Точки храним в Postgres как geometry(Point, 4326), обмениваемся с БД
// текстовым EWKT: "SRID=4326;POINT(lon lat)".

const srid = 4326

var ErrMalformedPoint = errors.New("malformed geometry point")

func FormatEWKT(p entities.GeoPoint) string {
	return fmt.Sprintf("SRID=%d;POINT(%g %g)", srid, p.Lon, p.Lat)
}

// FormatEWKTPtr возвращает nil для nil-точки, чтобы NULL-колонки
// прокидывались в запрос как есть.
func FormatEWKTPtr(p *entities.GeoPoint) *string {
	if p == nil {
		return nil
	}
	s := FormatEWKT(*p)
	return &s
}

func ParseEWKT(s string) (entities.GeoPoint, error) {
	body := s
	if idx := strings.IndexByte(body, ';'); idx >= 0 {
		body = body[idx+1:]
	}

	body = strings.TrimSpace(body)
	upper := strings.ToUpper(body)
	if !strings.HasPrefix(upper, "POINT(") || !strings.HasSuffix(body, ")") {
		return entities.GeoPoint{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	inner := body[len("POINT(") : len(body)-1]
	parts := strings.Fields(inner)
	if len(parts) != 2 {
		return entities.GeoPoint{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return entities.GeoPoint{}, fmt.Errorf("%w: longitude %q", ErrMalformedPoint, parts[0])
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return entities.GeoPoint{}, fmt.Errorf("%w: latitude %q", ErrMalformedPoint, parts[1])
	}

	return entities.GeoPoint{Lon: lon, Lat: lat}, nil
}

// ParseEWKTPtr — nil на входе даёт nil на выходе (NULL-колонка).
func ParseEWKTPtr(s *string) (*entities.GeoPoint, error) {
	if s == nil {
		return nil, nil
	}
	p, err := ParseEWKT(*s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

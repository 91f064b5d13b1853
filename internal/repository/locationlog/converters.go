package locationlog

import (
	"service/internal/entities"
	"service/internal/pkg/geo"
)

func ToDomain(l *LocationLogDB, point entities.GeoPoint) *entities.LocationLog {
	if l == nil {
		return nil
	}

	return &entities.LocationLog{
		ID:         l.ID,
		ShipmentID: l.ShipmentID,
		DriverID:   l.DriverID,
		Point:      point,
		RecordedAt: l.RecordedAt,
		CreatedAt:  l.CreatedAt,
	}
}

func FromDomainModify(logModify *entities.LocationLogModify) *LocationLogModifyDB {
	if logModify == nil {
		return nil
	}

	logDB := &LocationLogModifyDB{
		ID:         logModify.ID,
		ShipmentID: logModify.ShipmentID,
		DriverID:   logModify.DriverID,
		RecordedAt: logModify.RecordedAt,
		CreatedAt:  logModify.CreatedAt,
	}

	if logModify.Point != nil {
		logDB.Point = geo.FormatEWKTPtr(logModify.Point)
	}

	return logDB
}

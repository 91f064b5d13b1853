package party

import (
	"service/internal/entities"
)

func ToShipperDomain(s *ShipperDB) *entities.Shipper {
	if s == nil {
		return nil
	}

	return &entities.Shipper{
		ID:          s.ID,
		Name:        s.Name,
		Phone:       s.Phone,
		CompanyName: s.CompanyName,
		CreatedAt:   s.CreatedAt,
	}
}

func ToDriverDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		VehicleNumber: d.VehicleNumber,
		CreatedAt:     d.CreatedAt,
	}
}

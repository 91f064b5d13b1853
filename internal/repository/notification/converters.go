package notification

import (
	"service/internal/entities"
)

func ToDomain(l *NotificationLogDB) *entities.NotificationLog {
	if l == nil {
		return nil
	}

	return &entities.NotificationLog{
		ID:            l.ID,
		TargetPartyID: l.TargetPartyID,
		ShipmentID:    l.ShipmentID,
		Kind:          entities.NotificationKind(l.Kind),
		Title:         l.Title,
		Body:          l.Body,
		CreatedAt:     l.CreatedAt,
	}
}

func FromDomainModify(logModify *entities.NotificationLogModify) *NotificationLogModifyDB {
	if logModify == nil {
		return nil
	}

	logDB := &NotificationLogModifyDB{
		ID:            logModify.ID,
		TargetPartyID: logModify.TargetPartyID,
		ShipmentID:    logModify.ShipmentID,
		Title:         logModify.Title,
		Body:          logModify.Body,
		CreatedAt:     logModify.CreatedAt,
	}

	if logModify.Kind != nil {
		kind := logModify.Kind.String()
		logDB.Kind = &kind
	}

	return logDB
}

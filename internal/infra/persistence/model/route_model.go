package model

import (
	"time"

	"github.com/google/uuid"
)

// TransportRouteModel is the GORM-specific struct for the 'transport_routes' table.
// One row per vehicle, service date and direction; the unique index enforces the slot.
type TransportRouteModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VehicleID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_routes_vehicle_date_type,priority:1"`
	Date      time.Time        `gorm:"type:date;not null;uniqueIndex:idx_routes_vehicle_date_type,priority:2"`
	RouteType string           `gorm:"type:text;not null;uniqueIndex:idx_routes_vehicle_date_type,priority:3"`
	Status    string           `gorm:"type:text;not null;default:'planned'"`
	Stops     []RouteStopModel `gorm:"foreignKey:RouteID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransportRouteModel) TableName() string {
	return "transport_routes"
}

// RouteStopModel is the GORM-specific struct for the 'route_stops' table.
type RouteStopModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RouteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DogID      uuid.UUID `gorm:"type:uuid;not null;index"`
	StopOrder  int       `gorm:"not null"`
	Address    string    `gorm:"type:text;not null"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Status     string    `gorm:"type:text;not null;default:'pending'"`
	ActualTime *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteStopModel) TableName() string {
	return "route_stops"
}

// RouteEventModel is the GORM-specific struct for the 'route_events' table.
// Append-only tracking events recorded against a route.
type RouteEventModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RouteID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	StopID    *uuid.UUID `gorm:"type:uuid"`
	EventType string     `gorm:"type:text;not null"`
	Detail    string     `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteEventModel) TableName() string {
	return "route_events"
}

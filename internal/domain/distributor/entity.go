package distributor

import "time"

type Distributor struct {
	ID        string
	Name      string
	OwnerName string
	Phone     string
	Email     *string
	Address   string
	Territory string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shop is a retail outlet served by a distributor. Coordinates are optional;
// when present they anchor marketing field-activity check-ins.
type Shop struct {
	ID            string
	DistributorID string
	Name          string
	Address       string
	Phone         *string
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

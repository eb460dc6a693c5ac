package entity

// Stats is the derived summary snapshot persisted alongside the ledger.
// It is advisory only: every display path recomputes it from the full
// record list rather than trusting the stored copy.
type Stats struct {
	TotalBookings    int   `json:"totalBookings"`
	TodayBookings    int   `json:"todayBookings"`
	DarshanBookings  int   `json:"darshanBookings"`
	VehicleBookings  int   `json:"vehicleBookings"`
	TotalRevenue     int64 `json:"totalRevenue"`
	TodayRevenue     int64 `json:"todayRevenue"`
	AverageOccupancy int   `json:"averageOccupancy"`
	TotalVisitors    int   `json:"totalVisitors"`
}

package entity

// ServiceOffering is a bookable temple service with a fixed unit price
// in rupees (smallest unit = 1).
type ServiceOffering struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

var darshanOfferings = []ServiceOffering{
	{ID: "general", Name: "General Darshan", Description: "Standard temple visit with deity darshan", Price: 50},
	{ID: "vip", Name: "VIP Darshan", Description: "Priority entry with shorter waiting time", Price: 200},
	{ID: "special-pooja", Name: "Special Pooja", Description: "Personalized pooja with priest blessings", Price: 500},
}

var vehicleOfferings = []ServiceOffering{
	{ID: "car", Name: "Car/Sedan", Description: "Blessing ceremony for cars and sedans", Price: 500},
	{ID: "suv", Name: "SUV/Hatchback", Description: "Blessing ceremony for SUVs and hatchbacks", Price: 600},
	{ID: "motorcycle", Name: "Motorcycle/Scooter", Description: "Blessing ceremony for two wheelers", Price: 300},
	{ID: "truck", Name: "Truck/Commercial", Description: "Blessing ceremony for commercial vehicles", Price: 800},
	{ID: "bus", Name: "Bus/Large Vehicle", Description: "Blessing ceremony for buses and large vehicles", Price: 1000},
	{ID: "auto", Name: "Auto Rickshaw", Description: "Blessing ceremony for auto rickshaws", Price: 400},
}

// DarshanOfferings returns the darshan service catalog
func DarshanOfferings() []ServiceOffering {
	return darshanOfferings
}

// VehicleOfferings returns the vehicle pooja service catalog
func VehicleOfferings() []ServiceOffering {
	return vehicleOfferings
}

// LookupOffering resolves an offering id within a service type. The
// second return value is false when the id is unknown; callers must not
// fall back to a fabricated service name.
func LookupOffering(serviceType ServiceType, id string) (*ServiceOffering, bool) {
	var catalog []ServiceOffering
	switch serviceType {
	case ServiceTypeDarshan:
		catalog = darshanOfferings
	case ServiceTypeVehicle:
		catalog = vehicleOfferings
	default:
		return nil, false
	}

	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

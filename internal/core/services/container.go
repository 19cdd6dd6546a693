package services

import (
	portsprov "github.com/parkingflow/parking_flow_app/internal/core/ports/providers"
	portsrepo "github.com/parkingflow/parking_flow_app/internal/core/ports/repositories"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
)

// Repositories bundles the persistence ports needed to build the services.
type Repositories struct {
	ParkingArea portsrepo.ParkingAreaRepository
	ParkingFee  portsrepo.ParkingFeeRepository
	User        portsrepo.UserRepository
}

// NewServiceContainer wires all services from their repositories and the
// exchange-rate provider.
func NewServiceContainer(repos Repositories, rateProvider portsprov.RateProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ParkingArea: NewParkingAreaService(repos.ParkingArea, repos.ParkingFee),
		ParkingFee:  NewParkingFeeService(repos.ParkingFee),
		Payment:     NewPaymentService(repos.ParkingArea, rateProvider),
		Rates:       NewRatesService(rateProvider),
		Reporting:   NewReportingService(repos.ParkingArea, repos.ParkingFee),
		User:        NewUserService(repos.User),
	}
}

package services

// ServiceContainer bundles the service interfaces handed to the HTTP layer.
type ServiceContainer struct {
	ParkingArea ParkingAreaService
	ParkingFee  ParkingFeeService
	Payment     PaymentService
	Rates       RatesService
	Reporting   ReportingService
	User        UserService
}

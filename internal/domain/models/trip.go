package models

// FlightLeg is a directed edge FromCity -> ArriveCity in the travel graph.
type FlightLeg struct {
	FlightNum  string `json:"flight_num"`
	Price      int64  `json:"price"`
	FromCity   string `json:"from_city"`
	ArriveCity string `json:"arrive_city"`
}

// HotelStay is anchored to a single city.
type HotelStay struct {
	HotelNum string `json:"hotel_num"`
	Location string `json:"location"`
	Price    int64  `json:"price"`
}

// BusLeg is a local bus booking, anchored to a single city like a hotel.
type BusLeg struct {
	BusNum   string `json:"bus_num"`
	Location string `json:"location"`
	Price    int64  `json:"price"`
}

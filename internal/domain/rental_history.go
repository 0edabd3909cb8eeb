package domain

// RentalHistory logs a rental transaction. EndRentalTime == nil is the sole
// "still active" signal; DestinationStationID == nil means the umbrella has
// not been returned yet. Times are stored as UTC "2006-01-02 15:04:05".
type RentalHistory struct {
	RentalHistoryID      int32   `json:"RentalHistoryID"`
	AccountID            int32   `json:"AccountID"`
	UmbrellaID           int32   `json:"UmbrellaID"`
	StartStationID       int32   `json:"StartStationID"`
	DestinationStationID *int32  `json:"DestinationStationID"`
	CardID               *int32  `json:"CardID"`
	StartRentalTime      string  `json:"StartRentalTime"`
	EndRentalTime        *string `json:"EndRentalTime"`
	Price                float64 `json:"Price"`
}

// RentalHistoryView is the denormalized list row. The destination station is
// left-joined, so an active rental still shows up with a nil destination name.
type RentalHistoryView struct {
	RentalHistoryID        int32   `json:"RentalHistoryID"`
	StartRentalTime        string  `json:"StartRentalTime"`
	EndRentalTime          *string `json:"EndRentalTime"`
	UmbrellaID             int32   `json:"UmbrellaID"`
	AccountID              int32   `json:"AccountID"`
	FirstName              string  `json:"FirstName"`
	LastName               string  `json:"LastName"`
	StartStationID         int32   `json:"StartStationID"`
	StartStationName       string  `json:"StartStationName"`
	DestinationStationID   *int32  `json:"DestinationStationID"`
	DestinationStationName *string `json:"DestinationStationName"`
	Price                  float64 `json:"Price"`
}

// RentalHistoryDetail is the single-record shape. Unlike the list row it
// inner-joins the destination station, so an active rental with no
// destination is not reachable through it.
type RentalHistoryDetail struct {
	RentalHistoryID      int32   `json:"RentalHistoryID"`
	AccountID            int32   `json:"AccountID"`
	UmbrellaID           int32   `json:"UmbrellaID"`
	StartStationID       int32   `json:"StartStationID"`
	DestinationStationID *int32  `json:"DestinationStationID"`
	StartRentalTime      string  `json:"StartRentalTime"`
	EndRentalTime        *string `json:"EndRentalTime"`
	AccountFirstName     string  `json:"AccountFirstName"`
	AccountLastName      string  `json:"AccountLastName"`
	StartStationName     string  `json:"StartStationName"`
	EndStationName       string  `json:"EndStationName"`
	Price                float64 `json:"Price"`
}

// HeatmapPoint pairs the start and destination coordinates of a completed
// rental for the dashboard heatmap.
type HeatmapPoint struct {
	StartStationID       int32   `json:"StartStationID"`
	StartLatitude        float64 `json:"StartLatitude"`
	StartLongitude       float64 `json:"StartLongitude"`
	DestinationStationID int32   `json:"DestinationStationID"`
	DestinationLatitude  float64 `json:"DestinationLatitude"`
	DestinationLongitude float64 `json:"DestinationLongitude"`
}

package domain

// Station is a physical docking location with fixed capacity and coordinates.
// CurrentStock is never persisted; read queries recompute it from the
// umbrellas currently docked at the station.
type Station struct {
	StationID    int32   `json:"StationID"`
	StationName  string  `json:"StationName"`
	Latitude     float64 `json:"Latitude"`
	Longitude    float64 `json:"Longitude"`
	Capacity     int32   `json:"Capacity"`
	CurrentStock int32   `json:"CurrentStock"`
}

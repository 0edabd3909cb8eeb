package domain

// MaintenanceHistory logs a maintenance visit tying a maintainer to a
// station at a point in time. MaintenanceTime is stored as UTC
// "2006-01-02 15:04:05".
type MaintenanceHistory struct {
	MaintenanceHistoryID int32  `json:"MaintenanceHistoryID"`
	MaintenanceTime      string `json:"MaintenanceTime"`
	MaintainerID         int32  `json:"MaintainerID"`
	StationID            int32  `json:"StationID"`
	Report               string `json:"Report"`
}

// MaintenanceHistoryView is the denormalized list row: the maintainer and
// station names are joined in for display.
type MaintenanceHistoryView struct {
	MaintenanceHistoryID int32  `json:"MaintenanceHistoryID"`
	MaintenanceTime      string `json:"MaintenanceTime"`
	Report               string `json:"Report"`
	MaintainerID         int32  `json:"MaintainerID"`
	MaintainerName       string `json:"MaintainerName"`
	MaintainerLastName   string `json:"MaintainerLastName"`
	StationID            int32  `json:"StationID"`
	StationName          string `json:"StationName"`
}

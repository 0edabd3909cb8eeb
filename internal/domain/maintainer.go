package domain

// Maintainer is a staff member who performs maintenance visits.
type Maintainer struct {
	MaintainerID int32   `json:"MaintainerID"`
	FirstName    string  `json:"FirstName"`
	LastName     string  `json:"LastName"`
	Phone        string  `json:"Phone"`
	Email        string  `json:"Email"`
	DateOfBirth  string  `json:"DateOfBirth"`
	Street       string  `json:"Street"`
	City         string  `json:"City"`
	Province     string  `json:"Province"`
	ZIPCode      string  `json:"ZIPCode"`
	Salary       float64 `json:"Salary"`
}

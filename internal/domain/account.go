package domain

// Account is a customer record. CardID is nil when no default payment method
// is linked. DateOfBirth is stored as a calendar date (2006-01-02).
type Account struct {
	AccountID   int32  `json:"AccountID"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	DateOfBirth string `json:"DateOfBirth"`
	Phone       string `json:"Phone"`
	Street      string `json:"Street"`
	City        string `json:"City"`
	Province    string `json:"Province"`
	ZIPCode     string `json:"ZIPCode"`
	CardID      *int32 `json:"CardID"`
}

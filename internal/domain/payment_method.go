package domain

// PaymentMethod is a stored card usable by an account or cited on a rental.
// ExpireDate is stored as a calendar date (2006-01-02).
type PaymentMethod struct {
	CardID     int32  `json:"CardID"`
	CardNumber string `json:"CardNumber"`
	CardName   string `json:"CardName"`
	CVV        string `json:"CVV"`
	ExpireDate string `json:"ExpireDate"`
}

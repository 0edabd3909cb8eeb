package domain

type UmbrellaSize string

const (
	UmbrellaSizeSmall  UmbrellaSize = "Small"
	UmbrellaSizeMedium UmbrellaSize = "Medium"
	UmbrellaSizeLarge  UmbrellaSize = "Large"
)

// Umbrella is a rentable unit. CurrentStationID is nil while the umbrella is
// out on a rental. CurrentStationName is populated by list queries only.
type Umbrella struct {
	UmbrellaID         int32        `json:"UmbrellaID"`
	Size               UmbrellaSize `json:"Size"`
	Color              string       `json:"Color"`
	CurrentStationID   *int32       `json:"CurrentStationID"`
	CurrentStationName *string      `json:"CurrentStationName,omitempty"`
}

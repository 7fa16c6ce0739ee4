package entities

// Vehicle is a customer vehicle registered in the workshop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plate_number-index): plate_number
type Vehicle struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plate_number"`
}

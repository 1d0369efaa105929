package fleet

// VehiclePayload carries the admin-supplied vehicle attributes for both
// create and update.
type VehiclePayload struct {
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Color       string  `json:"color"`
	PricePerDay float64 `json:"price_per_day" binding:"required"`
}

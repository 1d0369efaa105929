package reservation

// CreateReservationRequest carries a customer-initiated booking. Dates
// travel as YYYY-MM-DD strings and are inclusive on both ends.
type CreateReservationRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	VehicleID int64  `json:"vehicle_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// UpdateStatusRequest carries a status transition on behalf of an
// explicit actor.
type UpdateStatusRequest struct {
	ActorUserID int64  `json:"actor_user_id" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

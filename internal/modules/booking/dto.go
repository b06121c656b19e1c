package booking

type CreateBookingRequest struct {
	ItemID  int64  `json:"itemId" binding:"required"`
	Date    string `json:"date" binding:"required"`
	EndDate string `json:"endDate"`
}

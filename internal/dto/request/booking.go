package request

type CreateBookingRequest struct {
	PropertyID   string `json:"property_id" validate:"required,uuid4"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

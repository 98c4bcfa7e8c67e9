package request

type ValidateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type FormatPhoneRequest struct {
	Phone string `json:"phone"`
}

type GeolocationReportRequest struct {
	Cause string   `json:"cause" binding:"required"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
}

package response

type ValidateContactResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

type FormatPhoneResponse struct {
	Phone string `json:"phone"`
	Valid bool   `json:"valid"`
}

type GeolocationFailureResponse struct {
	Cause   string `json:"cause"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

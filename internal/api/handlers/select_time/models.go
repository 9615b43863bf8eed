package select_time

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "18:30"
}

package navigate_month

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Delta int `json:"delta"` // -1 или 1
}

package domain

// ProxyBuyer is a community member who fulfills purchase requests for a fee.
type ProxyBuyer struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	AvatarURL        string  `json:"avatar"`
	Rating           float64 `json:"rating"`
	CompletedOrders  int     `json:"completedOrders"`
	DistanceMeters   int     `json:"distanceMeters"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	Commission       int64   `json:"commission"`
	Verified         bool    `json:"verified"`
	Description      string  `json:"description,omitempty"`
}

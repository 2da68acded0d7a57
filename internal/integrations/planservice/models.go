package planservice

// Plan тариф пользователя из PlanService
type Plan struct {
	UserID string `json:"user_id"`
	Tier   string `json:"tier"` // free, basic, pro, premium
}

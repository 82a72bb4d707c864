package request

// WeeklyReportRequest represents weekly report query parameters.
// WeekStart is the first day of the reported week, which runs through the
// six days that follow; empty means the current week starting Monday.
type WeeklyReportRequest struct {
	WeekStart string `form:"week_start" binding:"omitempty,datetime=2006-01-02"`
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
}

// MonthlyReportRequest represents monthly report query parameters.
// Month is YYYY-MM; empty means the current month.
type MonthlyReportRequest struct {
	Month  string `form:"month"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

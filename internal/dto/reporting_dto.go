package dto

// MonthParams selects a calendar month. Zero values default to the current month.
type MonthParams struct {
	Year  int `form:"year" binding:"omitempty,min=1,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

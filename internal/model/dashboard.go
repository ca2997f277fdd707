package model

type DashboardStats struct {
	TotalPatients     int `json:"totalPatients"`
	TotalAppointments int `json:"totalAppointments"`
	TodayAppointments int `json:"todayAppointments"`
	TotalCheckups     int `json:"totalCheckups"`
}

// DayCount is one bucket of the appointments-per-day chart.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

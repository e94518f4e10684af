package model

// AppData is the persisted snapshot: both collections plus the id counters.
type AppData struct {
	Tasks          []*Task     `json:"tasks"`
	Employees      []*Employee `json:"employees"`
	NextTaskID     int         `json:"nextTaskId"`
	NextEmployeeID int         `json:"nextEmployeeId"`
}

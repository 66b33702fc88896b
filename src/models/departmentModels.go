package models

// DepartmentRecord is a department as transmitted by the collection API.
type DepartmentRecord struct {
	DepartmentID int    `json:"DepartmentID"`
	Name         string `json:"Name"`
	Location     string `json:"Location"`
	Description  string `json:"Description"`
	IsDeleted    int    `json:"is_deleted"`
}

// DepartmentSource selects which upstream department listing backs the view.
type DepartmentSource string

const (
	DepartmentsAll            DepartmentSource = "all"
	DepartmentsWithArtwork    DepartmentSource = "withArtwork"
	DepartmentsWithoutArtwork DepartmentSource = "withoutArtwork"
)

package models

// ArtworkRecord is an artwork as transmitted by the collection API. The
// backend is authoritative; the gateway only holds ephemeral copies.
type ArtworkRecord struct {
	ArtworkID       int      `json:"ArtworkID"`
	Title           string   `json:"Title"`
	ArtistID        int      `json:"artist_id"`
	ArtistName      string   `json:"artist_name"`
	DepartmentID    int      `json:"department_id"`
	DepartmentName  string   `json:"department_name"`
	CreationYear    *int     `json:"CreationYear"`
	Medium          string   `json:"Medium"`
	Height          *float64 `json:"height"`
	Width           *float64 `json:"width"`
	Depth           *float64 `json:"depth"`
	AcquisitionDate string   `json:"acquisition_date"`
	Condition       string   `json:"ArtworkCondition"`
	Location        string   `json:"location"`
	Price           *float64 `json:"price"`
	Description     string   `json:"Description"`
	IsDeleted       int      `json:"is_deleted"`
}

// DisplayArtistName substitutes "Unknown Artist" when the referenced artist
// is missing.
func (a ArtworkRecord) DisplayArtistName() string {
	if a.ArtistName == "" {
		return "Unknown Artist"
	}
	return a.ArtistName
}

// DisplayDepartmentName substitutes "Unknown Department" when the referenced
// department is missing.
func (a ArtworkRecord) DisplayDepartmentName() string {
	if a.DepartmentName == "" {
		return "Unknown Department"
	}
	return a.DepartmentName
}

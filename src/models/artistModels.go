package models

// ArtistRecord is an artist as transmitted by the collection API.
type ArtistRecord struct {
	ArtistID    int    `json:"ArtistID"`
	Name        string `json:"name_"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	BirthYear   *int   `json:"birth_year"`
	DeathYear   *int   `json:"death_year"`
	Description string `json:"description"`
	IsDeleted   int    `json:"is_deleted"`
}

package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/FAMH/Collection-Gateway/src/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort tokens accepted by the comparator engine. Anything else is a stable
// pass-through.
const (
	SortTitleAsc       = "title_asc"
	SortTitleDesc      = "title_desc"
	SortYearAsc        = "year_asc"
	SortYearDesc       = "year_desc"
	SortArtistAsc      = "artist_asc"
	SortArtistDesc     = "artist_desc"
	SortDepartmentAsc  = "department_asc"
	SortDepartmentDesc = "department_desc"
)

// collator performs locale-aware string comparison for sort orderings.
// Loose matching ignores case and diacritic differences the way the
// browser's locale comparison did.
var collator = collate.New(language.English, collate.Loose)

// ArtworkFilter is the active search and facet state for the artwork tab.
// Empty fields impose no constraint.
type ArtworkFilter struct {
	Query          string `json:"query"`
	Medium         string `json:"medium"`
	ArtistName     string `json:"artist"`
	Year           string `json:"year"`
	DepartmentName string `json:"department"`
}

func (f ArtworkFilter) Active() bool {
	return strings.TrimSpace(f.Query) != "" || f.Medium != "" || f.ArtistName != "" ||
		f.Year != "" || f.DepartmentName != ""
}

// ArtistFilter is the active search and facet state for the artist tab.
type ArtistFilter struct {
	Query       string `json:"query"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

func (f ArtistFilter) Active() bool {
	return strings.TrimSpace(f.Query) != "" || f.Gender != "" || f.Nationality != ""
}

func yearString(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

func yearValue(year *int) int {
	if year == nil {
		return 0
	}
	return *year
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// MatchArtwork reports whether one artwork satisfies every active
// constraint. Free text matches title or artist name case-insensitively;
// facets require exact equality (case-insensitive for text); all active
// constraints AND together. Missing fields normalize to "".
func MatchArtwork(a models.ArtworkRecord, f ArtworkFilter) bool {
	query := strings.ToLower(f.Query)
	title := strings.ToLower(a.Title)
	artist := strings.ToLower(a.ArtistName)

	if query != "" && !strings.Contains(title, query) && !strings.Contains(artist, query) {
		return false
	}
	if f.Medium != "" && !equalFold(a.Medium, f.Medium) {
		return false
	}
	if f.ArtistName != "" && !equalFold(a.ArtistName, f.ArtistName) {
		return false
	}
	if f.Year != "" && yearString(a.CreationYear) != f.Year {
		return false
	}
	if f.DepartmentName != "" && !equalFold(a.DepartmentName, f.DepartmentName) {
		return false
	}
	return true
}

// MatchArtist reports whether one artist satisfies every active constraint.
func MatchArtist(a models.ArtistRecord, f ArtistFilter) bool {
	query := strings.ToLower(f.Query)
	if query != "" && !strings.Contains(strings.ToLower(a.Name), query) {
		return false
	}
	if f.Gender != "" && !equalFold(a.Gender, f.Gender) {
		return false
	}
	if f.Nationality != "" && !equalFold(a.Nationality, f.Nationality) {
		return false
	}
	return true
}

// SortArtworks returns a stably ordered copy of in for the given sort token.
// Unknown tokens keep the input order.
func SortArtworks(in []models.ArtworkRecord, token string) []models.ArtworkRecord {
	out := make([]models.ArtworkRecord, len(in))
	copy(out, in)

	switch token {
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[j].Title, out[i].Title) < 0
		})
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return yearValue(out[i].CreationYear) < yearValue(out[j].CreationYear)
		})
	case SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return yearValue(out[j].CreationYear) < yearValue(out[i].CreationYear)
		})
	case SortArtistAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].ArtistName, out[j].ArtistName) < 0
		})
	case SortArtistDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[j].ArtistName, out[i].ArtistName) < 0
		})
	}
	return out
}

// SortArtists returns a stably ordered copy of in for the given sort token.
func SortArtists(in []models.ArtistRecord, token string) []models.ArtistRecord {
	out := make([]models.ArtistRecord, len(in))
	copy(out, in)

	switch token {
	case SortArtistAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortArtistDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[j].Name, out[i].Name) < 0
		})
	}
	return out
}

// SortDepartments returns a stably ordered copy of in by department name.
func SortDepartments(in []models.DepartmentRecord, token string) []models.DepartmentRecord {
	out := make([]models.DepartmentRecord, len(in))
	copy(out, in)

	switch token {
	case SortDepartmentAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortDepartmentDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[j].Name, out[i].Name) < 0
		})
	}
	return out
}

// DeriveArtworkView is the single pure derivation from raw collection plus
// filter and sort state to the visible subset, callable directly from tests.
func DeriveArtworkView(raw []models.ArtworkRecord, filter ArtworkFilter, sortToken string) []models.ArtworkRecord {
	filtered := make([]models.ArtworkRecord, 0, len(raw))
	for _, a := range raw {
		if MatchArtwork(a, filter) {
			filtered = append(filtered, a)
		}
	}
	return SortArtworks(filtered, sortToken)
}

// DeriveArtistView is the artist-tab counterpart of DeriveArtworkView.
func DeriveArtistView(raw []models.ArtistRecord, filter ArtistFilter, sortToken string) []models.ArtistRecord {
	filtered := make([]models.ArtistRecord, 0, len(raw))
	for _, a := range raw {
		if MatchArtist(a, filter) {
			filtered = append(filtered, a)
		}
	}
	return SortArtists(filtered, sortToken)
}

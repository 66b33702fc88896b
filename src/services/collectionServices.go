package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
	"go.uber.org/zap"
)

// Tab is the active entity tab of a collection view.
type Tab string

const (
	TabArtwork Tab = "artwork"
	TabArtist  Tab = "artist"
)

// ModalState is the modal lifecycle of a collection view:
// idle -> view -> (edit | confirm-delete) -> idle.
type ModalState string

const (
	ModalNone          ModalState = "idle"
	ModalView          ModalState = "view"
	ModalEdit          ModalState = "edit"
	ModalConfirmDelete ModalState = "confirm-delete"
)

var (
	ErrNotInView          = errors.New("record is not part of the current view")
	ErrNoOpenModal        = errors.New("no record is open")
	ErrActionInFlight     = errors.New("another submission is already in flight")
	ErrRestoreUnavailable = errors.New("restore is only available in the deleted view")
	ErrDeleteUnavailable  = errors.New("delete is not available in the deleted view")
	ErrUnknownTab         = errors.New("unknown tab")
)

// RestoreBlockedError carries every rule an artwork restore violates. It is
// computed locally from the prerequisite lookups; no restore call is issued.
type RestoreBlockedError struct {
	Reasons []string
}

func (e *RestoreBlockedError) Error() string {
	return strings.Join(e.Reasons, " ")
}

// FilterOptions are the facet option lists fetched alongside the collection.
type FilterOptions struct {
	Mediums       []string                  `json:"mediums"`
	Years         []string                  `json:"years"`
	Nationalities []string                  `json:"nationalities"`
	Departments   []models.DepartmentRecord `json:"departments"`
}

// CollectionView owns the fetch -> filter -> sort pipeline and the modal
// state machine for one session and one soft-delete view. Refreshes overwrite
// the local cache last-write-wins; the remote store is authoritative.
type CollectionView struct {
	api *api.Client
	log *zap.Logger

	deletedView bool

	mu sync.Mutex

	// generation stamps each refresh; completions carrying a stale stamp
	// are discarded before they touch the cache.
	generation uint64

	artworks       []models.ArtworkRecord
	artistsWith    []models.ArtistRecord
	artistsWithout []models.ArtistRecord
	options        FilterOptions

	activeTab     Tab
	artworkFilter ArtworkFilter
	artistFilter  ArtistFilter
	sortOption    string

	modal        ModalState
	selectedKind Tab
	selectedID   int
	inFlight     map[string]bool
}

func NewCollectionView(client *api.Client, logger *zap.Logger, deletedView bool) *CollectionView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionView{
		api:         client,
		log:         logger,
		deletedView: deletedView,
		activeTab:   TabArtwork,
		sortOption:  SortTitleAsc,
		modal:       ModalNone,
		inFlight:    make(map[string]bool),
	}
}

// Refresh re-fetches the collection and the facet option lists, overwriting
// the cache. Failed fetches keep the previous slice in place and are logged;
// a stale completion (a newer refresh started meanwhile) is discarded
// entirely.
func (v *CollectionView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	artworks, artErr := v.api.ListArtworks(ctx, v.deletedView)
	withArt, withErr := v.api.ListArtistsWithArtwork(ctx, v.deletedView)
	withoutArt, withoutErr := v.api.ListArtistsWithoutArtwork(ctx, v.deletedView)
	options, optErr := v.fetchFilterOptions(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		v.log.Info("discarding stale collection refresh", zap.Uint64("generation", gen))
		return nil
	}

	if artErr != nil {
		v.log.Warn("artwork fetch failed, keeping cached collection", zap.Error(artErr))
	} else {
		v.artworks = artworks
	}
	if withErr != nil {
		v.log.Warn("artist fetch failed, keeping cached artists", zap.Error(withErr))
	} else {
		v.artistsWith = withArt
	}
	if withoutErr != nil {
		v.log.Warn("artist fetch failed, keeping cached artists", zap.Error(withoutErr))
	} else {
		v.artistsWithout = withoutArt
	}
	if optErr != nil {
		v.log.Warn("filter option fetch failed, keeping cached options", zap.Error(optErr))
	} else {
		v.options = *options
	}

	return errors.Join(artErr, withErr, withoutErr)
}

func (v *CollectionView) fetchFilterOptions(ctx context.Context) (*FilterOptions, error) {
	mediums, err := v.api.Mediums(ctx)
	if err != nil {
		return nil, err
	}
	years, err := v.api.CreationYears(ctx)
	if err != nil {
		return nil, err
	}
	nationalities, err := v.api.Nationalities(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := v.api.ListDepartments(ctx, models.DepartmentsAll, false)
	if err != nil {
		return nil, err
	}
	return &FilterOptions{
		Mediums:       mediums,
		Years:         years,
		Nationalities: nationalities,
		Departments:   departments,
	}, nil
}

// SwitchTab activates a tab, clearing every filter and resetting the sort
// token to the tab's default.
func (v *CollectionView) SwitchTab(tab Tab) error {
	if tab != TabArtwork && tab != TabArtist {
		return ErrUnknownTab
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.activeTab = tab
	v.artworkFilter = ArtworkFilter{}
	v.artistFilter = ArtistFilter{}
	if tab == TabArtwork {
		v.sortOption = SortTitleAsc
	} else {
		v.sortOption = SortArtistAsc
	}
	v.closeModalLocked()
	return nil
}

func (v *CollectionView) SetArtworkFilter(f ArtworkFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.artworkFilter = f
}

func (v *CollectionView) SetArtistFilter(f ArtistFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.artistFilter = f
}

func (v *CollectionView) SetSort(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sortOption = token
}

// ArtworkView derives the visible artwork subset synchronously from the
// cache; no network is involved.
func (v *CollectionView) ArtworkView() []models.ArtworkRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return DeriveArtworkView(v.artworks, v.artworkFilter, v.sortOption)
}

// ArtistView derives both artist lists (with and without artwork).
func (v *CollectionView) ArtistView() (withArtwork, withoutArtwork []models.ArtistRecord) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return DeriveArtistView(v.artistsWith, v.artistFilter, v.sortOption),
		DeriveArtistView(v.artistsWithout, v.artistFilter, v.sortOption)
}

// ViewState is a serializable snapshot of the whole view for the UI.
type ViewState struct {
	DeletedView    bool                   `json:"deletedView"`
	ActiveTab      Tab                    `json:"activeTab"`
	ArtworkFilter  ArtworkFilter          `json:"artworkFilter"`
	ArtistFilter   ArtistFilter           `json:"artistFilter"`
	SortOption     string                 `json:"sortOption"`
	SearchActive   bool                   `json:"searchActive"`
	Modal          ModalState             `json:"modal"`
	SelectedKind   Tab                    `json:"selectedKind,omitempty"`
	SelectedID     int                    `json:"selectedId,omitempty"`
	Options        FilterOptions          `json:"options"`
	Artworks       []models.ArtworkRecord `json:"artworks"`
	ArtistsWith    []models.ArtistRecord  `json:"artistsWithArtwork"`
	ArtistsWithout []models.ArtistRecord  `json:"artistsWithoutArtwork"`
}

func (v *CollectionView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := ViewState{
		DeletedView:   v.deletedView,
		ActiveTab:     v.activeTab,
		ArtworkFilter: v.artworkFilter,
		ArtistFilter:  v.artistFilter,
		SortOption:    v.sortOption,
		Modal:         v.modal,
		Options:       v.options,
	}
	if v.modal != ModalNone {
		state.SelectedKind = v.selectedKind
		state.SelectedID = v.selectedID
	}
	if v.activeTab == TabArtwork {
		state.SearchActive = v.artworkFilter.Active()
		state.Artworks = DeriveArtworkView(v.artworks, v.artworkFilter, v.sortOption)
	} else {
		state.SearchActive = v.artistFilter.Active()
		state.ArtistsWith = DeriveArtistView(v.artistsWith, v.artistFilter, v.sortOption)
		state.ArtistsWithout = DeriveArtistView(v.artistsWithout, v.artistFilter, v.sortOption)
	}
	return state
}

// OpenArtwork transitions to the view modal for one cached artwork.
func (v *CollectionView) OpenArtwork(id int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, a := range v.artworks {
		if a.ArtworkID == id {
			v.modal = ModalView
			v.selectedKind = TabArtwork
			v.selectedID = id
			return nil
		}
	}
	return ErrNotInView
}

// OpenArtist transitions to the view modal for one cached artist.
func (v *CollectionView) OpenArtist(id int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, a := range v.artistsWith {
		if a.ArtistID == id {
			v.modal = ModalView
			v.selectedKind = TabArtist
			v.selectedID = id
			return nil
		}
	}
	for _, a := range v.artistsWithout {
		if a.ArtistID == id {
			v.modal = ModalView
			v.selectedKind = TabArtist
			v.selectedID = id
			return nil
		}
	}
	return ErrNotInView
}

// BeginEdit moves an open view modal into edit mode.
func (v *CollectionView) BeginEdit() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.modal != ModalView {
		return ErrNoOpenModal
	}
	v.modal = ModalEdit
	return nil
}

// RequestDelete moves an open view modal into delete confirmation.
func (v *CollectionView) RequestDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.deletedView {
		return ErrDeleteUnavailable
	}
	if v.modal != ModalView {
		return ErrNoOpenModal
	}
	v.modal = ModalConfirmDelete
	return nil
}

// CloseModal returns the view to idle.
func (v *CollectionView) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeModalLocked()
}

func (v *CollectionView) closeModalLocked() {
	v.modal = ModalNone
	v.selectedKind = ""
	v.selectedID = 0
}

// tryBegin marks one mutating action in flight; a second submission of the
// same action is rejected until the first settles.
func (v *CollectionView) tryBegin(action string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.inFlight[action] {
		return false
	}
	v.inFlight[action] = true
	return true
}

func (v *CollectionView) end(action string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inFlight, action)
}

// ConfirmDelete soft-deletes the record under the confirm-delete modal,
// returns to idle on success and refreshes the cache. Failures keep the
// modal open.
func (v *CollectionView) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	if v.modal != ModalConfirmDelete {
		v.mu.Unlock()
		return ErrNoOpenModal
	}
	kind := v.selectedKind
	id := v.selectedID
	v.mu.Unlock()

	if !v.tryBegin("delete") {
		return ErrActionInFlight
	}
	defer v.end("delete")

	var err error
	if kind == TabArtwork {
		err = v.api.DeleteArtwork(ctx, id)
	} else {
		err = v.api.DeleteArtist(ctx, id)
	}
	if err != nil {
		return err
	}

	v.CloseModal()
	return v.Refresh(ctx)
}

// RestoreArtwork restores a soft-deleted artwork after verifying that its
// artist and department are both active. The prerequisite lookups always
// run; a violated rule blocks the restore call itself and every violated
// rule is reported in one message.
func (v *CollectionView) RestoreArtwork(ctx context.Context, id int) error {
	if !v.deletedView {
		return ErrRestoreUnavailable
	}

	v.mu.Lock()
	var target *models.ArtworkRecord
	for i := range v.artworks {
		if v.artworks[i].ArtworkID == id {
			target = &v.artworks[i]
			break
		}
	}
	v.mu.Unlock()
	if target == nil {
		return ErrNotInView
	}

	if !v.tryBegin("restore") {
		return ErrActionInFlight
	}
	defer v.end("restore")

	artist, err := v.api.GetArtist(ctx, target.ArtistID)
	if err != nil {
		return fmt.Errorf("checking artist before restore: %w", err)
	}
	department, err := v.api.GetDepartment(ctx, target.DepartmentID)
	if err != nil {
		return fmt.Errorf("checking department before restore: %w", err)
	}

	var reasons []string
	if artist.IsDeleted == 1 {
		reasons = append(reasons, "Cannot restore this artwork because the assigned artist is deleted. Please restore the artist first.")
	}
	if department.IsDeleted == 1 {
		reasons = append(reasons, "Cannot restore this artwork because the assigned department is deleted. Please restore the department first.")
	}
	if len(reasons) > 0 {
		return &RestoreBlockedError{Reasons: reasons}
	}

	if err := v.api.RestoreArtwork(ctx, id); err != nil {
		return err
	}

	v.CloseModal()
	return v.Refresh(ctx)
}

// RestoreArtist restores a soft-deleted artist. Artists have no restore
// prerequisites.
func (v *CollectionView) RestoreArtist(ctx context.Context, id int) error {
	if !v.deletedView {
		return ErrRestoreUnavailable
	}

	if !v.tryBegin("restore") {
		return ErrActionInFlight
	}
	defer v.end("restore")

	if err := v.api.RestoreArtist(ctx, id); err != nil {
		return err
	}

	v.CloseModal()
	return v.Refresh(ctx)
}

// Images fetches the image blobs for the active tab's cached records with
// bounded concurrency, returning per-item failures instead of swallowing
// them.
func (v *CollectionView) Images(ctx context.Context) (map[int][]byte, []api.ImageFailure) {
	v.mu.Lock()
	tab := v.activeTab
	var ids []int
	if tab == TabArtwork {
		for _, a := range v.artworks {
			ids = append(ids, a.ArtworkID)
		}
	} else {
		for _, a := range v.artistsWith {
			ids = append(ids, a.ArtistID)
		}
		for _, a := range v.artistsWithout {
			ids = append(ids, a.ArtistID)
		}
	}
	v.mu.Unlock()

	kind := api.KindArtwork
	if tab == TabArtist {
		kind = api.KindArtist
	}
	return v.api.FetchImageBatch(ctx, kind, ids, 8)
}

// CollectionRegistry hands out one CollectionView per session and
// soft-delete view.
type CollectionRegistry struct {
	api *api.Client
	log *zap.Logger

	mu    sync.Mutex
	views map[string]*CollectionView
}

func NewCollectionRegistry(client *api.Client, logger *zap.Logger) *CollectionRegistry {
	return &CollectionRegistry{
		api:   client,
		log:   logger,
		views: make(map[string]*CollectionView),
	}
}

func (r *CollectionRegistry) View(auth models.AuthContext, deletedView bool) *CollectionView {
	key := fmt.Sprintf("%d/%t", auth.UserID, deletedView)

	r.mu.Lock()
	defer r.mu.Unlock()
	if view, ok := r.views[key]; ok {
		return view
	}
	view := NewCollectionView(r.api, r.log, deletedView)
	r.views[key] = view
	return view
}

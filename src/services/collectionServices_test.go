package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream is a configurable stand-in for the museum API.
type fakeUpstream struct {
	mux *http.ServeMux

	artworkFail  atomic.Bool
	restoreCalls atomic.Int32
	deleteCalls  atomic.Int32

	artistDeleted     bool
	departmentDeleted bool
}

func newFakeUpstream(t *testing.T) (*fakeUpstream, *api.Client) {
	t.Helper()
	f := &fakeUpstream{mux: http.NewServeMux()}

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}

	f.mux.HandleFunc("/artwork", func(w http.ResponseWriter, r *http.Request) {
		if f.artworkFail.Load() {
			w.WriteHeader(500)
			return
		}
		deleted := r.URL.Query().Get("isDeleted") == "true"
		if deleted {
			writeJSON(w, []map[string]any{
				{"ArtworkID": 10, "Title": "Shipwreck", "artist_id": 1, "department_id": 2, "is_deleted": 1},
			})
			return
		}
		writeJSON(w, []map[string]any{
			{"ArtworkID": 1, "Title": "Water Lilies", "artist_id": 1, "department_id": 2},
			{"ArtworkID": 2, "Title": "The Starry Night", "artist_id": 1, "department_id": 2},
		})
	})
	f.mux.HandleFunc("/artist-with-artwork", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"ArtistID": 1, "name_": "Claude Monet"}})
	})
	f.mux.HandleFunc("/artist-null-artwork", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"ArtistID": 2, "name_": "Unknown Apprentice"}})
	})
	f.mux.HandleFunc("/mediums", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"Oil on canvas"})
	})
	f.mux.HandleFunc("/creation-years", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"1906"})
	})
	f.mux.HandleFunc("/nationalities", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"French"})
	})
	f.mux.HandleFunc("/department", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"DepartmentID": 2, "Name": "European Paintings"}})
	})
	f.mux.HandleFunc("/artist/1", func(w http.ResponseWriter, r *http.Request) {
		deleted := 0
		if f.artistDeleted {
			deleted = 1
		}
		writeJSON(w, map[string]any{"ArtistID": 1, "name_": "Claude Monet", "is_deleted": deleted})
	})
	f.mux.HandleFunc("/department/2", func(w http.ResponseWriter, r *http.Request) {
		deleted := 0
		if f.departmentDeleted {
			deleted = 1
		}
		writeJSON(w, []map[string]any{{"DepartmentID": 2, "Name": "European Paintings", "is_deleted": deleted}})
	})
	f.mux.HandleFunc("/artwork/10/restore", func(w http.ResponseWriter, r *http.Request) {
		f.restoreCalls.Add(1)
		writeJSON(w, map[string]any{"message": "restored"})
	})
	f.mux.HandleFunc("/artwork/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			f.deleteCalls.Add(1)
			writeJSON(w, map[string]any{"message": "deleted"})
			return
		}
		w.WriteHeader(404)
	})

	server := httptest.NewServer(f.mux)
	t.Cleanup(server.Close)
	return f, api.NewClient(server.URL, nil)
}

func TestRefreshPopulatesCachesAndOptions(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)

	require.NoError(t, view.Refresh(context.Background()))

	state := view.State()
	assert.Equal(t, TabArtwork, state.ActiveTab)
	assert.Equal(t, SortTitleAsc, state.SortOption)
	require.Len(t, state.Artworks, 2)
	// Default sort is title ascending.
	assert.Equal(t, "The Starry Night", state.Artworks[0].Title)
	assert.Equal(t, []string{"Oil on canvas"}, state.Options.Mediums)
	assert.Equal(t, []string{"1906"}, state.Options.Years)
}

func TestRefreshFailureKeepsPreviousCache(t *testing.T) {
	f, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)
	require.NoError(t, view.Refresh(context.Background()))

	f.artworkFail.Store(true)
	err := view.Refresh(context.Background())
	require.Error(t, err)

	// The artwork list is stale but still served.
	assert.Len(t, view.ArtworkView(), 2)
}

func TestSwitchTabResetsFiltersAndSort(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)
	require.NoError(t, view.Refresh(context.Background()))

	view.SetArtworkFilter(ArtworkFilter{Query: "lilies"})
	view.SetSort(SortYearDesc)
	require.NoError(t, view.OpenArtwork(1))

	require.NoError(t, view.SwitchTab(TabArtist))
	state := view.State()
	assert.Equal(t, TabArtist, state.ActiveTab)
	assert.Equal(t, SortArtistAsc, state.SortOption)
	assert.False(t, state.ArtworkFilter.Active())
	assert.Equal(t, ModalNone, state.Modal)

	assert.ErrorIs(t, view.SwitchTab(Tab("gift-shop")), ErrUnknownTab)
}

func TestModalLifecycle(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)
	require.NoError(t, view.Refresh(context.Background()))

	// Edit requires an open view modal.
	assert.ErrorIs(t, view.BeginEdit(), ErrNoOpenModal)

	assert.ErrorIs(t, view.OpenArtwork(999), ErrNotInView)
	require.NoError(t, view.OpenArtwork(1))
	assert.Equal(t, ModalView, view.State().Modal)

	require.NoError(t, view.BeginEdit())
	assert.Equal(t, ModalEdit, view.State().Modal)

	view.CloseModal()
	assert.Equal(t, ModalNone, view.State().Modal)
}

func TestConfirmDeleteClosesModalAndRefreshes(t *testing.T) {
	f, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)
	require.NoError(t, view.Refresh(context.Background()))

	require.NoError(t, view.OpenArtwork(1))
	require.NoError(t, view.RequestDelete())
	require.NoError(t, view.ConfirmDelete(context.Background()))

	assert.Equal(t, int32(1), f.deleteCalls.Load())
	assert.Equal(t, ModalNone, view.State().Modal)
}

func TestDeleteUnavailableInDeletedView(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, true)
	require.NoError(t, view.Refresh(context.Background()))

	require.NoError(t, view.OpenArtwork(10))
	assert.ErrorIs(t, view.RequestDelete(), ErrDeleteUnavailable)
}

func TestRestoreBlockedByDeletedArtist(t *testing.T) {
	f, client := newFakeUpstream(t)
	f.artistDeleted = true

	view := NewCollectionView(client, nil, true)
	require.NoError(t, view.Refresh(context.Background()))

	err := view.RestoreArtwork(context.Background(), 10)
	var blocked *RestoreBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t,
		"Cannot restore this artwork because the assigned artist is deleted. Please restore the artist first.",
		blocked.Error())
	// The restore endpoint is never reached.
	assert.Equal(t, int32(0), f.restoreCalls.Load())
}

func TestRestoreBlockedReportsEveryViolatedRule(t *testing.T) {
	f, client := newFakeUpstream(t)
	f.artistDeleted = true
	f.departmentDeleted = true

	view := NewCollectionView(client, nil, true)
	require.NoError(t, view.Refresh(context.Background()))

	err := view.RestoreArtwork(context.Background(), 10)
	var blocked *RestoreBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Reasons, 2)
	assert.Contains(t, blocked.Error(), "artist is deleted")
	assert.Contains(t, blocked.Error(), "department is deleted")
	assert.Equal(t, int32(0), f.restoreCalls.Load())
}

func TestRestoreSucceedsWhenPrerequisitesActive(t *testing.T) {
	f, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, true)
	require.NoError(t, view.Refresh(context.Background()))

	require.NoError(t, view.RestoreArtwork(context.Background(), 10))
	assert.Equal(t, int32(1), f.restoreCalls.Load())
}

func TestRestoreUnavailableInActiveView(t *testing.T) {
	_, client := newFakeUpstream(t)
	view := NewCollectionView(client, nil, false)
	require.NoError(t, view.Refresh(context.Background()))

	assert.ErrorIs(t, view.RestoreArtwork(context.Background(), 1), ErrRestoreUnavailable)
}

func TestRegistryHandsOutOneViewPerSessionAndMode(t *testing.T) {
	_, client := newFakeUpstream(t)
	registry := NewCollectionRegistry(client, nil)

	alice := models.AuthContext{UserID: 1, Username: "alice", Role: "staff"}
	bob := models.AuthContext{UserID: 2, Username: "bob", Role: "staff"}

	assert.Same(t, registry.View(alice, false), registry.View(alice, false))
	assert.NotSame(t, registry.View(alice, false), registry.View(alice, true))
	assert.NotSame(t, registry.View(alice, false), registry.View(bob, false))
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var artworkCalls atomic.Int32

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
	mux.HandleFunc("/artwork", func(w http.ResponseWriter, r *http.Request) {
		if artworkCalls.Add(1) == 1 {
			// First refresh stalls until a newer one has completed.
			<-release
			writeJSON(w, []map[string]any{{"ArtworkID": 99, "Title": "Stale"}})
			return
		}
		writeJSON(w, []map[string]any{
			{"ArtworkID": 1, "Title": "Fresh A"},
			{"ArtworkID": 2, "Title": "Fresh B"},
		})
	})
	for _, path := range []string{"/artist-with-artwork", "/artist-null-artwork"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []map[string]any{})
		})
	}
	for _, path := range []string{"/mediums", "/creation-years", "/nationalities"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []string{})
		})
	}
	mux.HandleFunc("/department", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	view := NewCollectionView(api.NewClient(server.URL, nil), nil, false)

	first := make(chan error, 1)
	go func() { first <- view.Refresh(context.Background()) }()
	for artworkCalls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, view.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-first)

	// The stale completion never touched the cache.
	out := view.ArtworkView()
	require.Len(t, out, 2)
	assert.Equal(t, "Fresh A", out[0].Title)
}

func TestRestoreBlockedErrorJoinsWithSpace(t *testing.T) {
	err := &RestoreBlockedError{Reasons: []string{"a.", "b."}}
	assert.Equal(t, "a. b.", err.Error())
	assert.Equal(t, 2, len(strings.Fields(err.Error())))
}

package listing_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StayMock/internal/listing"
	"StayMock/pkg/kit"
)

func newListingsTS(t *testing.T) (*httptest.Server, *listing.Service) {
	t.Helper()

	svc := newService(t, listing.Latencies{})
	h := listing.NewHandler(svc, kit.RouterDeps{
		Log:     zap.NewNop(),
		Service: "listings",
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, svc
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body=%s", raw)
	}
	return resp
}

func TestHTTP_SearchListings(t *testing.T) {
	ts, svc := newListingsTS(t)

	var all []listing.Listing
	resp := getJSON(t, ts.URL+"/listings", &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, svc.Catalog().Listings(), all)

	var villas []listing.Listing
	resp = getJSON(t, ts.URL+"/listings?type=Villa&amenities=Wifi", &villas)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, l := range villas {
		assert.Equal(t, "Villa", l.Type)
		assert.Contains(t, l.Amenities, "Wifi")
	}
}

func TestHTTP_SearchNoMatchIsEmptyArray(t *testing.T) {
	ts, _ := newListingsTS(t)

	resp, err := http.Get(ts.URL + "/listings?location=Atlantis")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestHTTP_SearchInvalidCriteria(t *testing.T) {
	ts, _ := newListingsTS(t)

	var e kit.ErrorResponse
	resp := getJSON(t, ts.URL+"/listings?guests=many", &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid criteria", e.Error)
	assert.NotEmpty(t, e.RequestID)
}

func TestHTTP_GetListing(t *testing.T) {
	ts, svc := newListingsTS(t)

	var l listing.Listing
	resp := getJSON(t, ts.URL+"/listings/7", &l)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	want, _ := svc.Catalog().Get(7)
	assert.Equal(t, want, l)

	for _, id := range []string{"0", "61", "nope"} {
		var e kit.ErrorResponse
		resp = getJSON(t, ts.URL+"/listings/"+id, &e)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "id %s", id)
		assert.Equal(t, "not found", e.Error)
	}
}

func TestHTTP_Reviews(t *testing.T) {
	ts, _ := newListingsTS(t)

	var a, b []listing.Review
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/listings/1/reviews", &a).StatusCode)
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/listings/9999/reviews", &b).StatusCode)
	assert.Len(t, a, 4)
	assert.Equal(t, a, b)
}

func TestHTTP_HealthAndReady(t *testing.T) {
	ts, _ := newListingsTS(t)

	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/healthz", nil).StatusCode)
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/readyz", nil).StatusCode)

	empty := listing.NewService(listing.NewCatalog(nil), listing.ServiceDeps{})
	ets := httptest.NewServer(listing.NewHandler(empty, kit.RouterDeps{}))
	t.Cleanup(ets.Close)
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, ets.URL+"/readyz", nil).StatusCode)
}

func TestClient(t *testing.T) {
	ts, svc := newListingsTS(t)
	c := listing.NewClient(ts.URL + "/")
	ctx := context.Background()

	got, err := c.Search(ctx, listing.Criteria{Location: listing.Ptr("spain"), Amenities: []string{"Pool"}})
	require.NoError(t, err)
	want := listing.Search(svc.Catalog(), listing.Criteria{Location: listing.Ptr("spain"), Amenities: []string{"Pool"}})
	assert.Equal(t, want, got)

	l, err := c.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, l.ID)

	_, err = c.Get(ctx, "1000")
	assert.ErrorIs(t, err, listing.ErrNotFound)

	rs, err := c.Reviews(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, rs, 4)

	_, err = c.Search(ctx, listing.Criteria{MaxPrice: listing.Ptr(100)})
	require.NoError(t, err)
}

func TestClient_InvalidCriteria(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid criteria", map[string]any{
			"cause": listing.ErrInvalidCriteria.Error() + `: guests="x" is not an integer`,
		})
	}))
	t.Cleanup(ts.Close)

	_, err := listing.NewClient(ts.URL).Search(context.Background(), listing.Criteria{})
	require.ErrorIs(t, err, listing.ErrInvalidCriteria)
	assert.Equal(t, `invalid search criteria: guests="x" is not an integer`, err.Error())
}

func TestClient_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	_, err := listing.NewClient(ts.URL).Reviews(context.Background(), "1")
	assert.ErrorIs(t, err, listing.ErrBadStatus)
}

func TestClient_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := listing.NewClient(url).Search(context.Background(), listing.Criteria{})
	assert.ErrorIs(t, err, listing.ErrUnavailable)
}

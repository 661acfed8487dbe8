package handler

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelnesia/internal/generator"
	"github.com/dharmasatrya/travelnesia/internal/history"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/ratelimit"
	"github.com/dharmasatrya/travelnesia/internal/search"
	"github.com/dharmasatrya/travelnesia/pkg/logger"
)

func newTestServer(cfg search.Config) *echo.Echo {
	ids := idgen.NewSequence(100)
	gen := generator.New(rand.New(rand.NewPCG(3, 5)), ids)
	store := history.NewStore(history.NewMemoryStorage())
	h := NewSearchHandler(search.NewService(gen, store, ids, logger.Nop{}, cfg), logger.Nop{})

	e := echo.New()
	Register(e, h)
	return e
}

func do(e *echo.Echo, method, path, body, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchFlights(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/flights/search",
		`{"from":"CGK","to":"DPS","departure":"2026-10-19","passengers":"2","class":"economy"}`, "s1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", rec.Header().Get(SessionHeader))

	var resp models.SearchResponse[models.FlightOffer]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ModeFlight, resp.Mode)
	assert.NotEmpty(t, resp.SearchID)
	assert.Len(t, resp.Results, generator.FlightCandidates)
	assert.Equal(t, len(resp.Results), resp.Metadata.TotalResults)
	assert.Equal(t, "Senin, 19 Oktober 2026", resp.Criteria["date_label"])
	assert.Empty(t, resp.Message)
	assert.True(t, strings.HasPrefix(resp.Results[0].Price.Formatted, "Rp "))
}

func TestSearchFlights_SameCity(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/flights/search",
		`{"from":"CGK","to":"CGK","departure":"2026-10-19","passengers":"1","class":"economy"}`, "s1")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ErrSameCity.Error(), resp.Message)
	assert.Equal(t, models.KindError, resp.Kind)
}

func TestSearchTrains_MissingFields(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/trains/search", `{"fromStation":"GMR"}`, "s1")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ErrMissingFields.Error(), resp.Message)
	assert.Contains(t, resp.Fields, "trainDate wajib diisi")
	assert.NotContains(t, resp.Fields, "fromStation wajib diisi")
}

func TestSearchHotels_NoResultsMessage(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/hotels/search",
		`{"city":"bali","checkin":"2026-11-01","checkout":"2026-11-03","guests":"2","rooms":"1","priceRange":"premium"}`, "s1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse[models.HotelOffer]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
	assert.Equal(t, models.NoResultsMessage, resp.Message)
}

func TestSearchShips(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/ships/search",
		`{"fromPort":"TNJ","toPort":"SBY","shipDate":"2026-11-02","shipPassengers":"1","shipClass":"ekonomi","vehicle":"motor"}`, "s1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse[models.ShipOffer]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, generator.ShipCandidates)
	assert.Equal(t, int64(50000), resp.Results[0].VehicleFee)
}

func TestSearch_MalformedBody(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/ships/search", `{"fromPort":`, "s1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestHistory(t *testing.T) {
	e := newTestServer(search.Config{})
	body := `{"fromStation":"GMR","toStation":"BD","trainDate":"2026-11-02","trainPassengers":"1","trainClass":"ekonomi"}`

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/v1/trains/search", body, "s1").Code)
	}

	rec := do(e, http.MethodGet, "/api/v1/history/train", "", "s1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ModeTrain, resp.Mode)
	assert.Len(t, resp.Entries, history.MaxEntries)
	assert.Equal(t, "GMR", resp.Entries[0]["fromStation"])

	rec = do(e, http.MethodGet, "/api/v1/history/train", "", "someone-else")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Entries)
}

func TestHistory_UnknownMode(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodGet, "/api/v1/history/bus", "", "s1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionMinted(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodGet, "/api/v1/history/ship", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(SessionHeader))
}

func TestRateLimited(t *testing.T) {
	limiter := ratelimit.NewModeLimiter(ratelimit.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	e := newTestServer(search.Config{RateLimiter: limiter})
	body := `{"fromPort":"TNJ","toPort":"SBY","shipDate":"2026-11-02","shipPassengers":"1","shipClass":"ekonomi"}`

	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/v1/ships/search", body, "s1").Code)

	rec := do(e, http.MethodPost, "/api/v1/ships/search", body, "s1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), models.KindWarning)
}

func TestBook(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodPost, "/api/v1/bookings", `{"mode":"flight","offer_id":"GA-101"}`, "s1")
	require.Equal(t, http.StatusCreated, rec.Code)

	var conf models.BookingConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conf))
	assert.True(t, conf.Success)
	assert.Equal(t, models.KindSuccess, conf.Kind)
	assert.True(t, strings.HasPrefix(conf.BookingID, "TN"))
	assert.Equal(t, "GA-101", conf.Details.OfferID)

	rec = do(e, http.MethodPost, "/api/v1/bookings", `{"mode":"flight"}`, "s1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	e := newTestServer(search.Config{})

	rec := do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

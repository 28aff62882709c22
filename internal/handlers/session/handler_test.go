package session

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	catalog  *dex.Catalog
	sessions *dex.Registry
	router   chi.Router
}

func (s *HandlerTestSuite) SetupTest() {
	s.catalog = dex.NewCatalog()
	s.catalog.Finish(dex.NewEnricher(rand.NewPCG(3, 3)).Enrich([]models.RawDigimon{
		{Name: "Agumon", Level: "Rookie"},
		{Name: "Gabumon", Level: "Rookie"},
		{Name: "Greymon", Level: "Champion"},
	}))
	s.sessions = dex.NewRegistry()

	s.router = chi.NewRouter()
	s.router.Route("/api/v1/sessions", NewHandler(s.catalog, s.sessions).Route)
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) view(rec *httptest.ResponseRecorder) dex.View {
	var v dex.View
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *HandlerTestSuite) toggle(rec *httptest.ResponseRecorder) toggleResponse {
	var resp toggleResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func (s *HandlerTestSuite) create() string {
	rec := s.do(http.MethodPost, "/api/v1/sessions", "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	v := s.view(rec)
	s.Require().NotEmpty(v.ID)
	return v.ID
}

func (s *HandlerTestSuite) TestCreateAndGet() {
	id := s.create()

	rec := s.do(http.MethodGet, "/api/v1/sessions/"+id, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	v := s.view(rec)
	s.Equal(id, v.ID)
	s.Equal(3, v.Total)
	s.Equal(dex.AllLevels, v.Level)
	s.Equal(dex.ViewGrid, v.ViewMode)
	s.True(v.Sound)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/sessions/nope", "").Code)
}

func (s *HandlerTestSuite) TestUpdate() {
	id := s.create()

	rec := s.do(http.MethodPatch, "/api/v1/sessions/"+id,
		`{"search":"MON","level":"Rookie","view_mode":"list","sound":false,"compare_mode":true}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	v := s.view(rec)
	s.Equal("MON", v.Search)
	s.Equal("Rookie", v.Level)
	s.Equal(dex.ViewList, v.ViewMode)
	s.False(v.Sound)
	s.True(v.CompareMode)
	s.Equal(2, v.Total)

	rec = s.do(http.MethodPatch, "/api/v1/sessions/"+id, `{"level":""}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(dex.AllLevels, s.view(rec).Level)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPatch, "/api/v1/sessions/"+id, `{"view_mode":"carousel"}`).Code)
}

func (s *HandlerTestSuite) TestToggleFavorite() {
	id := s.create()

	resp := s.toggle(s.do(http.MethodPost, "/api/v1/sessions/"+id+"/favorites/2", ""))
	s.Equal("added", resp.Result)
	s.Equal([]int{2}, resp.Session.Favorites)

	resp = s.toggle(s.do(http.MethodPost, "/api/v1/sessions/"+id+"/favorites/2", ""))
	s.Equal("removed", resp.Result)
	s.Empty(resp.Session.Favorites)

	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/favorites/9", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/favorites/x", "").Code)
}

func (s *HandlerTestSuite) TestToggleCompare() {
	id := s.create()
	base := "/api/v1/sessions/" + id + "/compare/"
	s.Require().Equal(http.StatusOK, s.do(http.MethodPatch, "/api/v1/sessions/"+id, `{"compare_mode":true}`).Code)

	s.Equal("added", s.toggle(s.do(http.MethodPost, base+"1", "")).Result)
	resp := s.toggle(s.do(http.MethodPost, base+"2", ""))
	s.Equal("added", resp.Result)
	s.Require().NotNil(resp.Session.Verdict)

	resp = s.toggle(s.do(http.MethodPost, base+"3", ""))
	s.Equal("full", resp.Result)
	s.Len(resp.Session.Comparing, 2)
	s.Equal(1, resp.Session.Comparing[0].ID)
	s.Equal(2, resp.Session.Comparing[1].ID)

	resp = s.toggle(s.do(http.MethodPost, base+"1", ""))
	s.Equal("removed", resp.Result)
	s.Nil(resp.Session.Verdict)
}

func (s *HandlerTestSuite) TestVerdictHiddenOutsideCompareMode() {
	id := s.create()
	base := "/api/v1/sessions/" + id + "/compare/"

	s.toggle(s.do(http.MethodPost, base+"1", ""))
	resp := s.toggle(s.do(http.MethodPost, base+"2", ""))
	s.Len(resp.Session.Comparing, 2)
	s.Nil(resp.Session.Verdict)
}

func (s *HandlerTestSuite) TestDetailModal() {
	id := s.create()

	rec := s.do(http.MethodPut, "/api/v1/sessions/"+id+"/selected/3", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	v := s.view(rec)
	s.Require().NotNil(v.Selected)
	s.Equal("Greymon", v.Selected.Name)

	rec = s.do(http.MethodDelete, "/api/v1/sessions/"+id+"/selected", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Nil(s.view(rec).Selected)

	s.Require().Equal(http.StatusOK, s.do(http.MethodPatch, "/api/v1/sessions/"+id, `{"compare_mode":true}`).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPut, "/api/v1/sessions/"+id+"/selected/3", "").Code)
}

func (s *HandlerTestSuite) TestDelete() {
	id := s.create()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/sessions/"+id, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/v1/sessions/"+id, "").Code)
	s.Zero(s.sessions.Len())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

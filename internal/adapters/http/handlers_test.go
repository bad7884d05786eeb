package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/hint"
	"svw.info/fitcube/internal/infrastructure/storage"
	"svw.info/fitcube/internal/solver"
	"svw.info/fitcube/internal/usecase"
	"svw.info/fitcube/internal/validator"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(domain.Sequence(), s, validator.New(), hint.NewNextMove(s), storage.NewFS(t.TempDir()))
	r := chi.NewRouter()
	New(uc).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	return res.StatusCode
}

func TestSolveSaveLoadList(t *testing.T) {
	srv := newServer(t)

	var solved solveResp
	code := do(t, srv, http.MethodPost, "/api/solve", `{"save":true,"name":"first"}`, &solved)
	require.Equal(t, http.StatusOK, code, solved.Error)
	assert.Len(t, solved.Moves, 23)
	assert.True(t, strings.HasPrefix(solved.Path, "@(0,0,0) E2 "))
	assert.Positive(t, solved.Nodes)
	require.NotEmpty(t, solved.ID)

	var loaded loadResp
	code = do(t, srv, http.MethodGet, "/api/solutions/"+solved.ID, "", &loaded)
	require.Equal(t, http.StatusOK, code, loaded.Error)
	assert.Equal(t, "first", loaded.Solution.Name)
	assert.Equal(t, solved.Moves, loaded.Solution.Moves)
	assert.Equal(t, solved.Path, loaded.Path)

	var list listResp
	code = do(t, srv, http.MethodGet, "/api/solutions", "", &list)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Solutions, 1)
	assert.Equal(t, solved.ID, list.Solutions[0].ID)

	var missing loadResp
	code = do(t, srv, http.MethodGet, "/api/solutions/nope", "", &missing)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, missing.Error)
}

func TestSolveWithoutBody(t *testing.T) {
	srv := newServer(t)
	var solved solveResp
	code := do(t, srv, http.MethodPost, "/api/solve", "", &solved)
	require.Equal(t, http.StatusOK, code, solved.Error)
	assert.Empty(t, solved.ID)
	assert.Len(t, solved.Moves, 23)
}

func TestValidate(t *testing.T) {
	srv := newServer(t)

	var solved solveResp
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/api/solve", `{}`, &solved))

	var ok validateResp
	code := do(t, srv, http.MethodPost, "/api/validate", `{"path":"`+solved.Path+`"}`, &ok)
	require.Equal(t, http.StatusOK, code, ok.Error)
	assert.True(t, ok.OK)

	body, err := json.Marshal(pathReq{Moves: solved.Moves[:5]})
	require.NoError(t, err)
	var short validateResp
	code = do(t, srv, http.MethodPost, "/api/validate", string(body), &short)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, short.OK)
	assert.NotEmpty(t, short.Conflicts)

	var bad validateResp
	code = do(t, srv, http.MethodPost, "/api/validate", `{"path":"E2"}`, &bad)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, bad.Error, "invalid path")

	var noDir validateResp
	code = do(t, srv, http.MethodPost, "/api/validate",
		`{"moves":[{"kind":"start","at":{"x":0,"y":0,"z":0}},{"kind":"travel","amount":2}]}`, &noDir)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, noDir.Error, `travel move without "dir"`)
}

func TestHint(t *testing.T) {
	srv := newServer(t)

	var resp hintResp
	code := do(t, srv, http.MethodPost, "/api/hint", `{"path":"@(0,0,0) E2"}`, &resp)
	require.Equal(t, http.StatusOK, code, resp.Error)
	require.True(t, resp.Found)
	assert.Equal(t, domain.Travel(domain.Up, 1), *resp.Move)

	var dead hintResp
	code = do(t, srv, http.MethodPost, "/api/hint", `{"path":"@(1,1,1)"}`, &dead)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, dead.Found)
	assert.Nil(t, dead.Move)
}

func TestUnique(t *testing.T) {
	srv := newServer(t)
	var resp uniqueResp
	code := do(t, srv, http.MethodGet, "/api/unique", "", &resp)
	require.Equal(t, http.StatusOK, code, resp.Error)
	assert.False(t, resp.Unique)
	assert.Positive(t, resp.Nodes)
}

func TestSaveRejectsInvalidSolution(t *testing.T) {
	srv := newServer(t)
	var resp saveResp
	code := do(t, srv, http.MethodPost, "/api/solutions", `{"moves":[{"kind":"start","at":{"x":0,"y":0,"z":0}}]}`, &resp)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Error, "invalid solution")
}

package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func post[T any](t *testing.T, s *Server, path, body string) (int, response[T]) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var res response[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

func TestParseEndpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.serve")
	defer teardown()
	//
	s := New(":0", nil)
	status, res := post[ParseResponse](t, s, "/api/markdown/parse",
		`{"source": "## Title\n**bold _it_** ![a](u \"cap\")"}`)
	assert.Equal(t, 200, status)
	assert.True(t, res.Success)
	elems := res.Data.Elements
	require.Len(t, elems, 5)
	assert.Equal(t, "Header", elems[0].Kind)
	assert.Equal(t, 2, elems[0].Level)
	assert.Equal(t, "Title", elems[0].Text)
	assert.Equal(t, [2]int{0, 8}, elems[0].Span)
	assert.Equal(t, "Bold", elems[2].Kind)
	require.Len(t, elems[2].Children, 2)
	assert.Equal(t, "Italic", elems[2].Children[1].Kind)
	img := elems[4]
	assert.Equal(t, "Image", img.Kind)
	assert.Equal(t, "u", img.URL)
	require.NotNil(t, img.Alt)
	assert.Equal(t, "a", *img.Alt)
	require.NotNil(t, img.Caption)
	assert.Equal(t, "cap", *img.Caption)
}

func TestPlainAndPreviewEndpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.serve")
	defer teardown()
	//
	regs := parameters.NewRegisters()
	regs.Push(parameters.P_PREVIEWWIDTH, 6)
	s := New(":0", regs)
	status, res := post[TextResponse](t, s, "/api/markdown/plain", `{"source": "# Hi\n- *there*"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Hi\nthere", res.Data.Text)
	//
	status, res = post[TextResponse](t, s, "/api/markdown/preview", `{"source": "# Hi\n- *there*"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Hi th…", res.Data.Text)
	assert.Equal(t, 6, res.Data.Width)
	//
	status, res = post[TextResponse](t, s, "/api/markdown/preview", `{"source": "# Hi\n- *there*", "width": 40}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Hi there", res.Data.Text)
	//
	status, res = post[TextResponse](t, s, "/api/markdown/preview", `{"source": "x", "width": -1}`)
	assert.Equal(t, 400, status)
	assert.False(t, res.Success)
	assert.Equal(t, "width must not be negative, is -1", res.Message)
}

func TestBadRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.serve")
	defer teardown()
	//
	s := New(":0", nil)
	status, res := post[ParseResponse](t, s, "/api/markdown/parse", `{"source": `)
	assert.Equal(t, 400, status)
	assert.False(t, res.Success)
	assert.Equal(t, 400, res.Code)
	assert.Equal(t, "invalid request body", res.Message)
}

func TestStatsEndpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.serve")
	defer teardown()
	//
	s := New(":0", nil)
	post[ParseResponse](t, s, "/api/markdown/parse", `{"source": "*a*"}`)
	post[TextResponse](t, s, "/api/markdown/plain", `{"source": "*a*"}`)
	req := httptest.NewRequest("GET", "/api/markdown/stats", nil)
	resp, err := s.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var res response[map[string]int]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1, res.Data["entries"])
	assert.Equal(t, 1, res.Data["hits"])
	assert.Equal(t, 1, res.Data["misses"])
}

func TestToElementResponses(t *testing.T) {
	res := ToElementResponses(markdown.Parse("3. x [l](http://t) ![](u)"))
	require.Len(t, res, 1)
	assert.Equal(t, "3.", res[0].Order)
	res = ToElementResponses(markdown.Parse("[l](http://t) ![](u)"))
	require.Len(t, res, 3)
	assert.Equal(t, "http://t", res[0].Target)
	assert.Nil(t, res[2].Alt)
	assert.Nil(t, res[2].Caption)
	assert.Empty(t, res[2].Children)
	res = ToElementResponses(markdown.Parse(`![](u "")`))
	require.Len(t, res, 1)
	assert.Nil(t, res[0].Alt)
	require.NotNil(t, res[0].Caption, "empty caption is present")
	assert.Equal(t, "", *res[0].Caption)
}

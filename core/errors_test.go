package core

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := WrapError(errors.New("open x.md: no such file"), EMISSING, "cannot read markdown file %s", "x.md")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "cannot read markdown file x.md", UserMessage(err))
	assert.Equal(t, "no markdown source (122): open x.md: no such file", err.Error())
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Error(EINVALID, "width")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Error(EMISSING, "source")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Error(ECONFIG, "key")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestUserErrorReport(t *testing.T) {
	var buf bytes.Buffer
	status := reportTo(&buf, Error(ECONFIG, "markdown.max-depth must be a non-negative integer"))
	assert.Equal(t, 4, status)
	assert.Equal(t, "mdtree: bad configuration: markdown.max-depth must be a non-negative integer\n"+
		"        check the markdown.* settings (max-depth, normalize, preview-width, cache-expiry, max-scan)\n",
		buf.String())
	//
	buf.Reset()
	status = reportTo(&buf, Error(EINVALID, "width must be positive"))
	assert.Equal(t, 3, status)
	assert.Equal(t, "mdtree: invalid argument: width must be positive\n", buf.String())
	//
	buf.Reset()
	assert.Equal(t, 0, reportTo(&buf, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 2, ExitCode(Error(EMISSING, "x")))
	assert.Equal(t, 5, ExitCode(errors.New("plain")))
}

package httputil

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]string{"id": "abc"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 409, "already exists")

	assert.Equal(t, 409, rec.Code)
	assert.JSONEq(t, `{"error":"already exists"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.cd"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "a@b.cd", v.Email)
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.cd","extra":1}`))
	assert.Error(t, DecodeJSON(req, &v))
}

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"wolfcafe-telegram/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsAuthAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil).WithToken("tok123")
	_, err := c.ListItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClientGuestSendsNoAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).ListOrders(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

func TestClientForbiddenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL, nil).DeleteItem(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientServerErrorIsNotUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).ListOrders(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateOrderStatusSendsPlainText(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer srv.Close()

	err := New(srv.URL, nil).UpdateOrderStatus(context.Background(), 7, "fulfilled")
	require.NoError(t, err)

	assert.Equal(t, "/api/orders/status/7", gotPath)
	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, "fulfilled", gotBody)
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"accessToken":"tok","tokenType":"Bearer","role":"ROLE_STAFF","id":5,"username":"ada"}`))
	}))
	defer srv.Close()

	auth, err := New(srv.URL, nil).Login(context.Background(), "ada", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", auth.AccessToken)
	assert.Equal(t, "ROLE_STAFF", auth.Role)
	assert.Equal(t, int64(5), auth.ID)
	assert.Equal(t, "ada", auth.Username)
}

func TestCreateOrderRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":9,"status":"pending","tip":135}`))
	}))
	defer srv.Close()

	created, err := New(srv.URL, nil).CreateOrder(context.Background(), models.Order{Tip: 135})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestGetItemByNameEscapesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"id":1,"name":"Flat White","price":425}`))
	}))
	defer srv.Close()

	item, err := New(srv.URL, nil).GetItemByName(context.Background(), "Flat White")
	require.NoError(t, err)
	assert.Equal(t, "/api/items/name/Flat%20White", gotPath)
	assert.Equal(t, int64(425), item.Price)
}

func TestGetTaxRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`2.0`))
	}))
	defer srv.Close()

	rate, err := New(srv.URL, nil).GetTaxRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.0, rate)
}

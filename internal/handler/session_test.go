package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarczmarek/catering-wizard/internal/transport"
	"github.com/pkarczmarek/catering-wizard/internal/wizard"
)

type fakeSubmitter struct {
	submitFunc func(ctx context.Context, inquiry *wizard.Inquiry) (*wizard.Receipt, error)
}

func (f *fakeSubmitter) Submit(ctx context.Context, inquiry *wizard.Inquiry) (*wizard.Receipt, error) {
	if f.submitFunc != nil {
		return f.submitFunc(ctx, inquiry)
	}
	return &wizard.Receipt{SubmittedAt: time.Now().UTC()}, nil
}

type viewResponse struct {
	SessionID  string          `json:"session_id"`
	StepIndex  int             `json:"step_index"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CanAdvance bool            `json:"can_advance"`
	Submitted  bool            `json:"submitted"`
	Order      struct {
		GuestCount        int            `json:"guest_count"`
		SimpleQuantities  map[string]int `json:"simple_quantities"`
		SelectedPackaging string         `json:"selected_packaging"`
	} `json:"order"`
}

func newServer(sub wizard.Submitter) http.Handler {
	return transport.NewRouter(wizard.NewStore(sub))
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, h http.Handler) viewResponse {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var view viewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestCreateSession(t *testing.T) {
	h := newServer(&fakeSubmitter{})

	view := createSession(t, h)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, 0, view.StepIndex)
	assert.Equal(t, 50, view.Order.GuestCount)
	assert.True(t, view.TotalPrice.IsZero())
	assert.False(t, view.CanAdvance, "event step starts incomplete")
}

func TestGetSession_Errors(t *testing.T) {
	h := newServer(&fakeSubmitter{})

	w := doRequest(t, h, http.MethodGet, "/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, h, http.MethodGet, "/sessions/2c97a7a9-2327-4099-a3f5-7a4b7a9e6a10", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetSimpleQuantity_UpdatesTotal(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)

	w := doRequest(t, h, http.MethodPut,
		fmt.Sprintf("/sessions/%s/products/simple/patera-serow", view.SessionID),
		`{"quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated viewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 2, updated.Order.SimpleQuantities["patera-serow"])
	assert.True(t, decimal.NewFromInt(900).Equal(updated.TotalPrice))

	w = doRequest(t, h, http.MethodPut,
		fmt.Sprintf("/sessions/%s/products/simple/patera-serow", view.SessionID),
		`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventAndNavigation(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)
	base := "/sessions/" + view.SessionID

	w := doRequest(t, h, http.MethodPut, base+"/event",
		`{"guest_count": 80, "event_type": "wedding", "event_date": "2026-09-12", "event_time": "16:00"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated viewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 80, updated.Order.GuestCount)
	assert.True(t, updated.CanAdvance)

	w = doRequest(t, h, http.MethodPost, base+"/next", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.StepIndex)

	// goto clamps out-of-range targets instead of failing.
	w = doRequest(t, h, http.MethodPost, base+"/goto", `{"step": 99}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, len(wizard.Steps())-1, updated.StepIndex)

	w = doRequest(t, h, http.MethodPost, base+"/reset", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 0, updated.StepIndex)
	assert.Equal(t, 50, updated.Order.GuestCount)
}

func TestPackagingDefaultsPersonCount(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)
	base := "/sessions/" + view.SessionID

	w := doRequest(t, h, http.MethodPut, base+"/event", `{"guest_count": 64}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPut, base+"/packaging", `{"packaging_id": "porcelana"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated viewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "porcelana", updated.Order.SelectedPackaging)
	// 25 zł/person for 64 guests.
	assert.True(t, decimal.NewFromInt(1600).Equal(updated.TotalPrice))
}

func TestSubmitOrder(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)
	base := "/sessions/" + view.SessionID

	w := doRequest(t, h, http.MethodPost, base+"/submit", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "payment method is required")

	w = doRequest(t, h, http.MethodPut, base+"/payment", `{"payment_method": "online"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, w.Code)

	var receipt wizard.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.False(t, receipt.SubmittedAt.IsZero())

	w = doRequest(t, h, http.MethodPost, base+"/submit", "")
	assert.Equal(t, http.StatusConflict, w.Code, "submission is terminal")
}

func TestGetSummary(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)
	base := "/sessions/" + view.SessionID

	doRequest(t, h, http.MethodPut, base+"/products/simple/patera-serow", `{"quantity": 2}`)
	doRequest(t, h, http.MethodPut, base+"/waiter-service", `{"service_id": "standard", "count": 1}`)

	w := doRequest(t, h, http.MethodGet, base+"/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Products []struct {
			Category struct {
				ID string `json:"id"`
			} `json:"category"`
			Lines []struct {
				Name     string `json:"name"`
				Quantity int    `json:"quantity"`
			} `json:"lines"`
		} `json:"products"`
		Extras []struct {
			Name string `json:"name"`
		} `json:"extras"`
		Total string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.Products, 1)
	assert.Equal(t, "patery", summary.Products[0].Category.ID)
	require.Len(t, summary.Extras, 1)
	assert.Equal(t, "Obsługa Standard", summary.Extras[0].Name)
	assert.Equal(t, "1500", summary.Total)
}

func TestGetSuggestions(t *testing.T) {
	h := newServer(&fakeSubmitter{})
	view := createSession(t, h)

	w := doRequest(t, h, http.MethodGet, "/sessions/"+view.SessionID+"/suggestions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		GuestCount  int            `json:"guest_count"`
		Suggestions map[string]int `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.GuestCount)
	assert.Equal(t, 7, resp.Suggestions["patera-serow"], "ceil(50/8)")
	assert.Equal(t, 8, resp.Suggestions["tacos"], "expandable minimum")
	assert.Equal(t, 50, resp.Suggestions["zestaw-1"], "guest count above the floor")
}

func TestGetCatalog(t *testing.T) {
	h := newServer(&fakeSubmitter{})

	w := doRequest(t, h, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
		Products []struct {
			Type string `json:"type"`
		} `json:"products"`
		PaymentMethods []struct {
			ID string `json:"id"`
		} `json:"payment_methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 3)
	assert.Len(t, resp.Products, 10)
	assert.Len(t, resp.PaymentMethods, 4)

	types := map[string]int{}
	for _, p := range resp.Products {
		types[p.Type]++
	}
	assert.Equal(t, map[string]int{"simple": 4, "expandable": 3, "configurable": 3}, types)

	w = doRequest(t, h, http.MethodGet, "/catalog/steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	var steps []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &steps))
	assert.Len(t, steps, 5)
}

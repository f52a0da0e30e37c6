package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	httpdelivery "order-store/internal/delivery/http"
	"order-store/internal/models"
	"order-store/internal/pkg/errs"
)

const sampleUID = "b563feb7-b2b8-4b6a-9c3e-7f1d2a4b5c6d"

const sampleOrderJSON = `{
  "order_uid":"b563feb7-b2b8-4b6a-9c3e-7f1d2a4b5c6d",
  "track_number":"WBILMTESTTRACK",
  "entry":"WBIL",
  "locale":"en",
  "internal_signature":"",
  "customer_id":"test",
  "delivery_service":"meest",
  "shardkey":"9",
  "sm_id":99,
  "date_created":"2021-11-26T06:22:19Z",
  "oof_shard":"1",
  "delivery":{"name":"Test Testov","phone":"+9720000000","zip":"2639809","city":"Kiryat Mozkin","address":"Ploshad Mira 15","region":"Kraiot","email":"test@gmail.com"},
  "payment":{"transaction":"b563feb7b2b84b6test","request_id":"","currency":"USD","provider":"wbpay","amount":1817,"payment_dt":1637907727,"bank":"alpha","delivery_cost":1500,"goods_total":317,"custom_fee":0},
  "items":[{"chrt_id":9934930,"track_number":"WBILMTESTTRACK","price":453,"rid":"ab4219087a764ae0btest","name":"Mascaras","sale":30,"size":"0","total_price":317,"nm_id":2389212,"brand":"Vivienne Sabo","status":202}]
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func mustOrder(t *testing.T) models.Order {
	var o models.Order
	require.NoError(t, json.Unmarshal([]byte(sampleOrderJSON), &o))
	return o
}

func serve(s *svcStub, method, path, body string) *httptest.ResponseRecorder {
	r := httpdelivery.NewHandler(s).InitRoutes()

	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func Test_CreateOrder_Created(t *testing.T) {
	var got models.Order
	s := &svcStub{
		create: func(o models.Order) (string, error) {
			got = o
			return sampleUID, nil
		},
	}

	w := serve(s, http.MethodPost, "/api/orders", sampleOrderJSON)

	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"order_uid":"`+sampleUID+`"}`, w.Body.String())
	require.Equal(t, "WBILMTESTTRACK", got.TrackNumber)
	require.Len(t, got.Items, 1)
	require.Equal(t, int64(9934930), got.Items[0].ChrtID)
	require.Equal(t, 1817, *got.Payment.Amount)
	require.True(t, got.DateCreated.Equal(time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC)))
}

func Test_CreateOrder_BadJSON_400(t *testing.T) {
	s := &svcStub{
		create: func(models.Order) (string, error) {
			t.Fatal("service must not be called")
			return "", nil
		},
	}

	w := serve(s, http.MethodPost, "/api/orders", `{"order_uid":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "decode")
}

func Test_CreateOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", errs.NewValidationError("Order.TrackNumber: required"), http.StatusBadRequest},
		{"duplicate", errors.Wrap(errs.ErrDuplicateIdentifier, "order x"), http.StatusConflict},
		{"internal", fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &svcStub{create: func(models.Order) (string, error) { return "", tt.err }}

			w := serve(s, http.MethodPost, "/api/orders", sampleOrderJSON)
			require.Equal(t, tt.code, w.Code)

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.err.Error(), resp.Message)
		})
	}
}

func Test_GetOrderById_OK(t *testing.T) {
	o := mustOrder(t)
	s := &svcStub{
		get: func(uid string) (models.Order, error) {
			require.Equal(t, o.OrderUID, uid)
			return o, nil
		},
	}

	w := serve(s, http.MethodGet, "/api/orders/"+o.OrderUID, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"order_uid":"`+o.OrderUID+`"`)
	require.Contains(t, w.Body.String(), `"shardkey":"9"`)
	require.NotContains(t, w.Body.String(), "item_id")
}

func Test_GetOrderById_NotFound_404(t *testing.T) {
	s := &svcStub{
		get: func(uid string) (models.Order, error) {
			return models.Order{}, errors.Wrapf(errs.ErrNotFound, "order %s", uid)
		},
	}

	w := serve(s, http.MethodGet, "/api/orders/does_not_exist", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not found")
}

func Test_ListOrders_OK(t *testing.T) {
	o := mustOrder(t)
	var gotLimit int
	s := &svcStub{
		list: func(limit int) ([]models.Order, error) {
			gotLimit = limit
			return []models.Order{o}, nil
		},
	}

	w := serve(s, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 100, gotLimit)
	require.Contains(t, w.Body.String(), `"data":[`)
	require.Contains(t, w.Body.String(), `"order_uid":"`+o.OrderUID+`"`)

	w = serve(s, http.MethodGet, "/api/orders?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5, gotLimit)
}

func Test_ListOrders_EmptyIsArray(t *testing.T) {
	w := serve(&svcStub{}, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func Test_ListOrders_BadLimit_400(t *testing.T) {
	for _, q := range []string{"abc", "0", "-1", "1001"} {
		w := serve(&svcStub{}, http.MethodGet, "/api/orders?limit="+q, "")
		require.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func Test_ListOrders_RegularError_500(t *testing.T) {
	s := &svcStub{
		list: func(int) ([]models.Order, error) {
			return nil, fmt.Errorf("regular error")
		},
	}

	w := serve(s, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "regular error")
}

func Test_DeleteOrder(t *testing.T) {
	var deleted string
	s := &svcStub{del: func(uid string) error { deleted = uid; return nil }}

	w := serve(s, http.MethodDelete, "/api/orders/"+sampleUID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, sampleUID, deleted)

	s.del = func(string) error { return errs.ErrNotFound }
	w = serve(s, http.MethodDelete, "/api/orders/"+sampleUID, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	s.del = func(string) error { return errors.Wrap(errs.ErrIntegrityViolation, "items survived") }
	w = serve(s, http.MethodDelete, "/api/orders/"+sampleUID, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func Test_AttachDelivery(t *testing.T) {
	body := `{"name":"Test Testov","phone":"+9720000000","zip":"2639809","city":"Kiryat Mozkin","address":"Ploshad Mira 15","region":"Kraiot","email":"test@gmail.com"}`
	s := &svcStub{
		attachDelivery: func(uid string, d models.Delivery) (int64, error) {
			require.Equal(t, sampleUID, uid)
			require.Equal(t, "Kiryat Mozkin", d.City)
			return 7, nil
		},
	}

	w := serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/delivery", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"delivery_id":7}`, w.Body.String())

	s.attachDelivery = func(string, models.Delivery) (int64, error) { return 0, errs.ErrAlreadyAttached }
	w = serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/delivery", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func Test_AttachPayment(t *testing.T) {
	body := `{"transaction":"b563feb7b2b84b6test","currency":"USD","provider":"wbpay","amount":1817,"bank":"alpha","delivery_cost":1500,"goods_total":317,"custom_fee":0}`
	s := &svcStub{
		attachPayment: func(uid string, p models.Payment) (int64, error) {
			require.Equal(t, 1817, *p.Amount)
			require.Zero(t, p.PaymentDt)
			return 3, nil
		},
	}

	w := serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/payment", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"payment_id":3}`, w.Body.String())

	s.attachPayment = func(string, models.Payment) (int64, error) { return 0, errs.ErrUnknownOrder }
	w = serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/payment", body)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_AddItem(t *testing.T) {
	body := `{"chrt_id":9934930,"track_number":"WBILMTESTTRACK","price":453,"rid":"ab4219087a764ae0btest","name":"Mascaras","sale":30,"size":"0","total_price":317,"nm_id":2389212,"brand":"Vivienne Sabo","status":202}`
	s := &svcStub{
		addItem: func(uid string, it models.Item) (int64, error) {
			require.Equal(t, int64(2389212), it.NmID)
			return 11, nil
		},
	}

	w := serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/items", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"item_id":11}`, w.Body.String())

	w = serve(s, http.MethodPost, "/api/orders/"+sampleUID+"/items", `[1,2]`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_NoRoute(t *testing.T) {
	w := serve(&svcStub{}, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"not found"}`, w.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	w := serve(&svcStub{}, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan error, 1)
	go func() {
		done <- s.Run("127.0.0.1:0", handler)
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-done, http.ErrServerClosed)
}

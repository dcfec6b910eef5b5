package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nowbuy/internal/badge"
	"nowbuy/internal/domain"
	"nowbuy/internal/events"
	cartrepo "nowbuy/internal/repository/cart"
	orderrepo "nowbuy/internal/repository/order"
	productrepo "nowbuy/internal/repository/product"
	proxyrepo "nowbuy/internal/repository/proxy"
	cartsvc "nowbuy/internal/service/cart"
	catalogsvc "nowbuy/internal/service/catalog"
	ordersvc "nowbuy/internal/service/order"
	proxysvc "nowbuy/internal/service/proxy"
	"nowbuy/internal/slot"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := productrepo.NewStatic([]domain.Product{
		{ID: 1, Name: "Classic White Sneakers", PriceCents: 298000, Store: "PX Mart", Available: true},
		{ID: 7, Name: "Nordic Ceramic Mug", PriceCents: 35900, Available: true},
	})
	proxies := proxyrepo.NewStatic([]domain.ProxyBuyer{
		{ID: 1, Name: "Mei Chen", Rating: 4.9, Verified: true},
		{ID: 2, Name: "Wang Dage", Rating: 4.8, Verified: true},
	})

	slots := slot.NewMemory()
	carts := cartrepo.New(slots)
	orders := orderrepo.New(slots)
	bus := events.NewBus()

	counter := badge.New(carts, bus)
	t.Cleanup(counter.Close)

	deps := Deps{
		CartSvc:    cartsvc.New(carts, products, bus),
		OrderSvc:   ordersvc.New(carts, orders, proxies, bus, 0),
		CatalogSvc: catalogsvc.New(products),
		ProxySvc:   proxysvc.New(proxies),
		Badge:      counter,
	}
	return buildRouter(zap.NewNop(), nil, deps, Options{Mode: "test"})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_DatabaseDisabled(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/readyz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"db":"disabled"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/products", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Results []domain.Product `json:"results"`
		Total   int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Total != 2 || len(resp.Results) != 2 {
		t.Fatalf("unexpected listing: %+v", resp)
	}
}

func TestListProducts_Search(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/products?q=mug", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Nordic Ceramic Mug") || strings.Contains(rec.Body.String(), "Sneakers") {
		t.Fatalf("unexpected search result: %s", rec.Body.String())
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/products/99", "s1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "product_not_found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetProduct_BadID(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/products/abc", "s1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListProxies(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/proxies", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mei Chen") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSession_GeneratedWhenMissing(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/cart", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(sessionHeader) == "" {
		t.Fatal("expected a generated session id in the response header")
	}
}

func TestSession_Echoed(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/cart", "session-abc", "")
	if got := rec.Header().Get(sessionHeader); got != "session-abc" {
		t.Fatalf("session header = %q, want session-abc", got)
	}
}

func TestAddCartItem(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1,"quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var view cartsvc.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if view.ItemCount != 2 || len(view.Items) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Items[0].UnitPrice != 2980 {
		t.Fatalf("unit price = %d", view.Items[0].UnitPrice)
	}
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":99}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItem_InvalidBody(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"quantity":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCartCount_TracksAdds(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/cart/count", "s1", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Fatalf("expected count 0, got %d body=%s", rec.Code, rec.Body.String())
	}

	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1,"quantity":2}`)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":7}`)

	rec = doJSON(t, router, http.MethodGet, "/api/cart/count", "s1", "")
	if !strings.Contains(rec.Body.String(), `"count":3`) {
		t.Fatalf("expected count 3, got body=%s", rec.Body.String())
	}
}

func TestOrderDraft_EmptyCart(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/order/draft", "s1", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "no_orderable_items") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestOrderDraft(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1}`)

	rec := doJSON(t, router, http.MethodGet, "/api/order/draft", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var draft ordersvc.Draft
	if err := json.Unmarshal(rec.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(draft.Items) != 1 {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if draft.Quote.Total.String() != "3159" {
		t.Fatalf("total = %s", draft.Quote.Total)
	}
}

func TestSubmitOrder_ProxyRequired(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1}`)

	rec := doJSON(t, router, http.MethodPost, "/api/orders", "s1", `{"specialRequests":"hi"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "proxy_required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrder_UnknownProxy(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1}`)

	rec := doJSON(t, router, http.MethodPost, "/api/orders", "s1", `{"proxyId":99}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "proxy_not_found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/orders", "s1", `{"proxyId":1}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubmitOrder_FullFlow(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1}`)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":7,"quantity":2}`)

	rec := doJSON(t, router, http.MethodPost, "/api/orders", "s1", `{"proxyId":2,"specialRequests":"leave at door"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var placed struct {
		Order    domain.Order        `json:"order"`
		Timeline []domain.OrderStage `json:"timeline"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &placed); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.HasPrefix(placed.Order.OrderID, "NOW") {
		t.Fatalf("order id = %q", placed.Order.OrderID)
	}
	if placed.Order.TotalAmount.String() != "3912.9" {
		t.Fatalf("total = %s", placed.Order.TotalAmount)
	}
	if placed.Order.SelectedProxy.Name != "Wang Dage" {
		t.Fatalf("proxy = %+v", placed.Order.SelectedProxy)
	}
	if len(placed.Timeline) != 4 || !placed.Timeline[0].Done || placed.Timeline[1].Done {
		t.Fatalf("unexpected timeline: %+v", placed.Timeline)
	}

	// The cart is emptied and the badge follows.
	rec = doJSON(t, router, http.MethodGet, "/api/cart/count", "s1", "")
	if !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Fatalf("expected count 0 after submission, got %s", rec.Body.String())
	}

	// The confirmation view reads the record back.
	rec = doJSON(t, router, http.MethodGet, "/api/orders/last", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), placed.Order.OrderID) {
		t.Fatalf("last order body missing id %q: %s", placed.Order.OrderID, rec.Body.String())
	}
}

func TestLastOrder_NoneSubmitted(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/orders/last", "s1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "order_not_found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSessionsIsolated(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/cart/items", "s1", `{"productId":1}`)

	rec := doJSON(t, router, http.MethodGet, "/api/cart", "s2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var view cartsvc.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("session s2 must not see s1's cart: %+v", view)
	}
}

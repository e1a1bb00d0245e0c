package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendd/internal/fleet"
	"vendd/pkg/types"
)

type mockService struct {
	machines []types.Machine
	status   types.StatusResponse
	ready    bool
	pubErr   error
	lastReq  types.PublishEventRequest
}

func (m *mockService) ListMachines() []types.Machine {
	return append([]types.Machine(nil), m.machines...)
}
func (m *mockService) Status() types.StatusResponse { return m.status }
func (m *mockService) Ready() bool                  { return m.ready }

func (m *mockService) GetMachine(id string) (types.Machine, error) {
	for _, mm := range m.machines {
		if mm.ID == id {
			return mm, nil
		}
	}
	return types.Machine{}, fleet.ErrMachineNotFound(id)
}

func (m *mockService) PublishEvent(req types.PublishEventRequest) (types.Machine, error) {
	m.lastReq = req
	if m.pubErr != nil {
		return types.Machine{}, m.pubErr
	}
	return m.GetMachine(req.MachineID)
}

func TestMachinesHandler(t *testing.T) {
	svc := &mockService{machines: []types.Machine{{ID: "001", StockLevel: 10}, {ID: "002", StockLevel: 2}}}
	r := NewMux(svc)
	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.MachinesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Machines) != 2 {
		t.Fatalf("machines len=%d", len(body.Machines))
	}
}

func TestMachineByIDHandler(t *testing.T) {
	svc := &mockService{machines: []types.Machine{{ID: "001", StockLevel: 7}}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/machines/001", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.Machine
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.ID != "001" || body.StockLevel != 7 {
		t.Fatalf("body=%+v", body)
	}
}

func TestMachineByIDNotFound(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/machines/999", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Code != http.StatusNotFound {
		t.Fatalf("body=%+v", body)
	}
}

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{MachineCount: 3}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.MachineCount != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func postEvent(t *testing.T, r http.Handler, contentType, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventsHandler(t *testing.T) {
	svc := &mockService{machines: []types.Machine{{ID: "001", StockLevel: 6}}}
	r := NewMux(svc)
	w := postEvent(t, r, "application/json", `{"kind":"sale","machine_id":"001","quantity":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body types.PublishEventResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Machine.ID != "001" {
		t.Fatalf("body=%+v", body)
	}
	if svc.lastReq.Kind != "sale" || svc.lastReq.Quantity != 4 {
		t.Fatalf("service saw %+v", svc.lastReq)
	}
}

func TestEventsHandlerWrongContentType(t *testing.T) {
	r := NewMux(&mockService{})
	w := postEvent(t, r, "text/plain", `{"kind":"sale"}`)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestEventsHandlerInvalidJSON(t *testing.T) {
	r := NewMux(&mockService{})
	w := postEvent(t, r, "application/json", `{"kind":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestEventsHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fleet.ErrInvalidEvent("quantity must be positive"), http.StatusBadRequest},
		{fleet.ErrMachineNotFound("999"), http.StatusNotFound},
	}
	for _, tc := range cases {
		svc := &mockService{pubErr: tc.err}
		r := NewMux(svc)
		w := postEvent(t, r, "application/json", `{"kind":"sale","machine_id":"999","quantity":1}`)
		if w.Code != tc.want {
			t.Fatalf("err=%v status=%d want=%d", tc.err, w.Code, tc.want)
		}
	}
}

func TestHealthz(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	r := NewMux(&mockService{ready: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewMux(&mockService{})
	// Prime the request counter; the middleware records after completion.
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "vendd_http_requests_total") {
		t.Fatalf("metrics body missing request counter")
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "rentline-backend/internal/api/http"
	"rentline-backend/internal/domain"
	"rentline-backend/internal/security"
	"rentline-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestServer(extensionSvc service.ExtensionService) (*httptest.Server, string) {
	tokens := security.NewTokenManager(testSecret, 60)
	token, _ := tokens.GenerateAccessToken(&domain.User{
		ID:    9,
		Name:  "Operator",
		Email: "op@example.com",
		Roles: []string{"admin"},
	})

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:       tokens,
		ExtensionSvc: extensionSvc,
	})
	return httptest.NewServer(router), token
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	return resp
}

func TestExtensionHandler_CheckAvailability(t *testing.T) {
	svc := new(MockExtensionService)
	server, token := newTestServer(svc)
	defer server.Close()

	t.Run("Success", func(t *testing.T) {
		svc.On("CheckAvailability", mock.Anything, int32(1), domain.ExtensionRequest{PeriodCount: 2, PeriodType: domain.PeriodTypeWeek}).
			Return(&domain.AvailabilityResult{Available: true, SessionID: "abc"}, nil)

		resp := doJSON(t, "POST", server.URL+"/api/v1/rentals/1/extension/check", token,
			map[string]any{"period_count": 2, "period_type": "WEEK"})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result domain.AvailabilityResult
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Available)
		assert.Equal(t, "abc", result.SessionID)
	})

	t.Run("BadRentalID", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/v1/rentals/zero/extension/check", token,
			map[string]any{"period_count": 1, "period_type": "DAY"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingToken", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/v1/rentals/1/extension/check", "",
			map[string]any{"period_count": 1, "period_type": "DAY"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestExtensionHandler_SelectSolution(t *testing.T) {
	svc := new(MockExtensionService)
	server, token := newTestServer(svc)
	defer server.Close()

	t.Run("UnknownSession", func(t *testing.T) {
		svc.On("SelectSolution", mock.Anything, "missing", 0).Return(nil, service.ErrUnknownSession)

		resp := doJSON(t, "POST", server.URL+"/api/v1/extension/sessions/missing/select", token,
			map[string]any{"solution_index": 0})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		svc.On("SelectSolution", mock.Anything, "abc", 1).Return(&domain.ResolutionSolution{
			Type: domain.SolutionTypeAlternativeDate,
		}, nil)

		resp := doJSON(t, "POST", server.URL+"/api/v1/extension/sessions/abc/select", token,
			map[string]any{"solution_index": 1})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var solution domain.ResolutionSolution
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&solution))
		assert.Equal(t, domain.SolutionTypeAlternativeDate, solution.Type)
	})
}

func TestExtensionHandler_Submit(t *testing.T) {
	svc := new(MockExtensionService)
	server, token := newTestServer(svc)
	defer server.Close()

	t.Run("PermissionDenied", func(t *testing.T) {
		svc.On("SubmitExtension", mock.Anything, mock.Anything, int32(1), mock.Anything).
			Return(nil, service.ErrPermissionDenied).Once()

		resp := doJSON(t, "POST", server.URL+"/api/v1/rentals/1/extension", token, domain.ExtensionSubmission{
			NewEndDate:    "2024-08-16",
			Items:         []domain.ExtensionItem{{LineID: 1, Action: "EXTEND"}},
			PaymentOption: domain.PaymentOptionOnReturn,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		svc.On("SubmitExtension", mock.Anything, mock.MatchedBy(func(c domain.Capability) bool {
			return c.UserID == 9
		}), int32(1), mock.Anything).Return(&domain.Rental{ID: 1, Status: domain.RentalStatusExtended}, nil)

		resp := doJSON(t, "POST", server.URL+"/api/v1/rentals/1/extension", token, domain.ExtensionSubmission{
			NewEndDate:    "2024-08-16",
			Items:         []domain.ExtensionItem{{LineID: 1, Action: "EXTEND"}},
			PaymentOption: domain.PaymentOptionPayNow,
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var rental domain.Rental
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&rental))
		assert.Equal(t, domain.RentalStatusExtended, rental.Status)
	})
}

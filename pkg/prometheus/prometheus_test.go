package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/socialharmony/backend/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	common.ObserveContractCall("getOrgs", nil)

	recorder := httptest.NewRecorder()
	NewHandler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `contract_call_total{method="getOrgs",status="ok"} 1`)
}

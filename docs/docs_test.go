package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	var doc struct {
		Swagger     string                     `json:"swagger"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.NotEmpty(t, doc.Definitions)

	for _, path := range []string{
		"/users/auth",
		"/users/logout",
		"/users/profile",
		"/analytics/home",
		"/analytics/users/{id}/series",
		"/analytics/users/{id}/skills",
		"/analytics/users/{id}/skills/history",
		"/analytics/teams/{id}/series",
		"/analytics/teams/{id}/summary",
		"/analytics/companies/{id}/skills/matrix",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

package orgdesk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL := setupContainer(t)
	client := orgsdk.NewClient(baseURL, "")

	live, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}

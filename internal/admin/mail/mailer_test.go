package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInviteBodyRendering(t *testing.T) {
	var buf bytes.Buffer
	err := inviteBody.Execute(&buf, Invite{
		To:        "new.hire@acme.example",
		OrgName:   "Acme Corp",
		InviteURL: "https://admin.acme.example/invite/abc123",
	})
	require.NoError(t, err)

	body := buf.String()
	require.Contains(t, body, "Acme Corp")
	require.Contains(t, body, "https://admin.acme.example/invite/abc123")
}

func TestInviteBodyEscapesHTML(t *testing.T) {
	var buf bytes.Buffer
	err := inviteBody.Execute(&buf, Invite{
		OrgName:   "<script>alert(1)</script>",
		InviteURL: "https://admin.acme.example/invite/abc123",
	})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "<script>")
}

package helper

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAdminToken(t *testing.T) {
	tok, exp, err := IssueAdminToken("s3cret", time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(AdminTokenTTL), exp, time.Minute)

	claims, err := ParseAdminToken("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.Role)

	_, err = ParseAdminToken("other", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAdminToken_Expired(t *testing.T) {
	tok, _, err := IssueAdminToken("s3cret", time.Now().Add(-13*time.Hour))
	require.NoError(t, err)

	_, err = ParseAdminToken("s3cret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueAdminToken_NoSecret(t *testing.T) {
	_, _, err := IssueAdminToken(" ", time.Now())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := ExtractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	cases := []struct {
		name   string
		header string
		cookie string
		status int
		body   string
	}{
		{"bearer", "Bearer abc", "", 200, "abc"},
		{"lowercase scheme and quotes", `bearer  "abc"`, "", 200, "abc"},
		{"cookie fallback", "", "xyz", 200, "xyz"},
		{"wrong scheme", "Basic abc", "", 401, ""},
		{"missing", "", "", 401, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", "access_token="+tc.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.body != "" {
				b, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tc.body, string(b))
			}
		})
	}
}

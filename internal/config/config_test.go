package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	t.Run("falls back to the local endpoint", func(t *testing.T) {
		cfg := FromEnv(envMap(nil))

		assert.Equal(t, DefaultGraphQLEndpoint, cfg.GetGraphQLEndpoint())
		assert.Equal(t, ":3000", cfg.GetAddr())
		assert.Equal(t, 12, cfg.GetJobsPerPage())
		assert.NotEmpty(t, cfg.GetSessionSecret())
	})

	t.Run("derives the endpoint from the WordPress URL", func(t *testing.T) {
		cfg := FromEnv(envMap(map[string]string{
			"NEXT_PUBLIC_WORDPRESS_URL": "https://cms.example.com/",
		}))

		assert.Equal(t, "https://cms.example.com", cfg.GetWordPressURL())
		assert.Equal(t, "https://cms.example.com/graphql", cfg.GetGraphQLEndpoint())
	})

	t.Run("explicit endpoint wins", func(t *testing.T) {
		cfg := FromEnv(envMap(map[string]string{
			"NEXT_PUBLIC_WORDPRESS_URL":              "https://cms.example.com",
			"NEXT_PUBLIC_WORDPRESS_GRAPHQL_ENDPOINT": "https://api.example.com/gql",
		}))

		assert.Equal(t, "https://api.example.com/gql", cfg.GetGraphQLEndpoint())
	})

	t.Run("invalid page size is ignored", func(t *testing.T) {
		cfg := FromEnv(envMap(map[string]string{"JOBS_PER_PAGE": "-3"}))
		assert.Equal(t, 12, cfg.GetJobsPerPage())

		cfg = FromEnv(envMap(map[string]string{"JOBS_PER_PAGE": "20"}))
		assert.Equal(t, 20, cfg.GetJobsPerPage())
	})

	t.Run("email notifications default to the log sender", func(t *testing.T) {
		cfg := FromEnv(envMap(nil))
		assert.Equal(t, "log", cfg.GetEmailProvider())
		assert.Empty(t, cfg.GetContactRecipient())

		cfg = FromEnv(envMap(map[string]string{
			"EMAIL_PROVIDER":    "resend",
			"EMAIL_API_KEY":     "re_123",
			"CONTACT_RECIPIENT": "hello@example.com",
		}))
		assert.Equal(t, "resend", cfg.GetEmailProvider())
		assert.Equal(t, "re_123", cfg.GetEmailAPIKey())
		assert.Equal(t, "hello@example.com", cfg.GetContactRecipient())
	})
}

package resource

import (
	"testing"
	"time"
)

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("RESOURCE_TEST_SET", "from-env")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain value", "plain", "plain"},
		{"env set", "${RESOURCE_TEST_SET:fallback}", "from-env"},
		{"env unset uses default", "${RESOURCE_TEST_UNSET:fallback}", "fallback"},
		{"env unset empty default", "${RESOURCE_TEST_UNSET:}", ""},
		{"env unset no default", "${RESOURCE_TEST_UNSET}", ""},
		{"embedded placeholder is literal", "prefix-${RESOURCE_TEST_SET}", "prefix-${RESOURCE_TEST_SET}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.value); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("RESOURCE_TEST_PORT", "9090")

	doc := []byte(`
app:
  server:
    port: ${RESOURCE_TEST_PORT:8080}
  search:
    debounce: 250ms
    min-query-length: 3
  notify:
    sinks: ${RESOURCE_TEST_SINKS:feed, redis,}
    list:
      - feed
      - sqs
`)
	if err := Load(doc); err != nil {
		t.Fatalf("Load() = %v; want nil", err)
	}

	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("app.server.port = %q; want %q", got, "9090")
	}
	if got := GetDuration("app.search.debounce"); got != 250*time.Millisecond {
		t.Errorf("app.search.debounce = %v; want 250ms", got)
	}
	if got := GetInt("app.search.min-query-length"); got != 3 {
		t.Errorf("app.search.min-query-length = %d; want 3", got)
	}
	if got := GetStringSlice("app.notify.sinks"); len(got) != 2 || got[0] != "feed" || got[1] != "redis" {
		t.Errorf("app.notify.sinks = %q; want [feed redis]", got)
	}
	if got := GetStringSlice("app.notify.list"); len(got) != 2 || got[1] != "sqs" {
		t.Errorf("app.notify.list = %q; want [feed sqs]", got)
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	if err := Load([]byte("app: [")); err == nil {
		t.Fatal("Load(invalid) = nil; want error")
	}
}

package database

import "testing"

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", Username: "app", Password: "pw", Database: "weather", Schema: "public"}

	want := "host=db port=5432 user=app password=pw dbname=weather sslmode=disable search_path=public"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q; want %q", got, want)
	}
}

package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "v1.0.0") ||
		!strings.Contains(output, "abcd1234") ||
		!strings.Contains(output, "2025-09-26") {
		t.Errorf("unexpected build info output: %s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("DATABASE_URL", "postgres://localhost/inventario")
	os.Setenv("SECRET_KEY", "test-secret")

	appPort, logLevel,
		databaseURL, secretKey,
		poolMinSize, poolMaxSize,
		importStrategy, importBatchSize,
		sessionExpSecond,
		redisAddr, redisDB, redisPassword, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appPort != "5000" {
		t.Errorf("expected default port 5000, got %s", appPort)
	}
	if logLevel != "info" {
		t.Errorf("expected default log level info, got %s", logLevel)
	}
	if databaseURL != "postgres://localhost/inventario" {
		t.Errorf("unexpected database url %s", databaseURL)
	}
	if secretKey != "test-secret" {
		t.Errorf("unexpected secret key %s", secretKey)
	}
	if poolMinSize != 1 || poolMaxSize != 3 {
		t.Errorf("expected pool 1/3, got %d/%d", poolMinSize, poolMaxSize)
	}
	if importStrategy != "replace" || importBatchSize != 2000 {
		t.Errorf("expected replace/2000, got %s/%d", importStrategy, importBatchSize)
	}
	if sessionExpSecond != 43200 {
		t.Errorf("expected session exp 43200, got %d", sessionExpSecond)
	}
	if redisAddr != "" || redisDB != 0 || redisPassword != "" || cacheTTLSecond != 300 {
		t.Errorf("unexpected redis defaults: %s/%d/%s/%d", redisAddr, redisDB, redisPassword, cacheTTLSecond)
	}
	if kafkaBroker != "" || kafkaTopic != "lecturas" {
		t.Errorf("unexpected kafka defaults: %s/%s", kafkaBroker, kafkaTopic)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	os.Setenv("DATABASE_URL", "postgres://localhost/inventario")
	os.Setenv("SECRET_KEY", "test-secret")
	os.Setenv("PORT", "8080")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("PGPOOL_MIN_SIZE", "2")
	os.Setenv("PGPOOL_MAX_SIZE", "10")
	os.Setenv("IMPORT_STRATEGY", "merge")
	os.Setenv("IMPORT_BATCH_SIZE", "500")
	os.Setenv("SESSION_EXP_SECOND", "60")
	os.Setenv("REDIS_ADDR", "localhost:6379")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("CACHE_TTL_SECONDS", "30")
	os.Setenv("KAFKA_BROKER", "localhost:9092")
	os.Setenv("KAFKA_TOPIC", "escaneos")

	appPort, logLevel,
		_, _,
		poolMinSize, poolMaxSize,
		importStrategy, importBatchSize,
		sessionExpSecond,
		redisAddr, redisDB, _, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appPort != "8080" || logLevel != "debug" {
		t.Errorf("unexpected app config: %s/%s", appPort, logLevel)
	}
	if poolMinSize != 2 || poolMaxSize != 10 {
		t.Errorf("expected pool 2/10, got %d/%d", poolMinSize, poolMaxSize)
	}
	if importStrategy != "merge" || importBatchSize != 500 {
		t.Errorf("expected merge/500, got %s/%d", importStrategy, importBatchSize)
	}
	if sessionExpSecond != 60 {
		t.Errorf("expected session exp 60, got %d", sessionExpSecond)
	}
	if redisAddr != "localhost:6379" || redisDB != 2 || cacheTTLSecond != 30 {
		t.Errorf("unexpected redis config: %s/%d/%d", redisAddr, redisDB, cacheTTLSecond)
	}
	if kafkaBroker != "localhost:9092" || kafkaTopic != "escaneos" {
		t.Errorf("unexpected kafka config: %s/%s", kafkaBroker, kafkaTopic)
	}
}

func TestParseConfig_MissingDatabaseURL(t *testing.T) {
	resetEnv()
	os.Setenv("SECRET_KEY", "test-secret")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")

	if err == nil || err.Error() != "DATABASE_URL no configurada" {
		t.Errorf("expected DATABASE_URL error, got %v", err)
	}
}

func TestParseConfig_MissingSecretKey(t *testing.T) {
	resetEnv()
	os.Setenv("DATABASE_URL", "postgres://localhost/inventario")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")

	if err == nil || err.Error() != "SECRET_KEY no configurada" {
		t.Errorf("expected SECRET_KEY error, got %v", err)
	}
}

func TestParseConfig_InvalidImportStrategy(t *testing.T) {
	resetEnv()
	os.Setenv("DATABASE_URL", "postgres://localhost/inventario")
	os.Setenv("SECRET_KEY", "test-secret")
	os.Setenv("IMPORT_STRATEGY", "append")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")

	if err == nil {
		t.Error("expected error for invalid IMPORT_STRATEGY")
	}
}

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "bare dsn",
			dsn:  "postgres://localhost/inventario",
			want: "postgres://localhost/inventario?sslmode=require",
		},
		{
			name: "dsn with query",
			dsn:  "postgres://localhost/inventario?connect_timeout=5",
			want: "postgres://localhost/inventario?connect_timeout=5&sslmode=require",
		},
		{
			name: "sslmode already set",
			dsn:  "postgres://localhost/inventario?sslmode=disable",
			want: "postgres://localhost/inventario?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDSN(tt.dsn); got != tt.want {
				t.Errorf("normalizeDSN(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}

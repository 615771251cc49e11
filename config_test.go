package blogpost

import "testing"

func TestConfigValidate(t *testing.T) {
	cfg := Config{
		ContentRoot: "testdata",
		BlogHost:    "https://blog.example.com",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidateMissingContentRoot(t *testing.T) {
	cfg := Config{BlogHost: "https://blog.example.com"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing content root")
	}
}

func TestConfigValidateBlankContentRoot(t *testing.T) {
	cfg := Config{ContentRoot: "   ", BlogHost: "https://blog.example.com"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for blank content root")
	}
}

func TestConfigValidateRelativeHost(t *testing.T) {
	cfg := Config{ContentRoot: "testdata", BlogHost: "blog.example.com/feed"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for non-absolute blog host")
	}
}

func TestConfigValidateMissingHost(t *testing.T) {
	cfg := Config{ContentRoot: "testdata"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing blog host")
	}
}

func TestConfigLoggerDefaultsToNoOp(t *testing.T) {
	cfg := Config{}
	if cfg.logger() == nil {
		t.Fatalf("expected a logger even when none configured")
	}
}

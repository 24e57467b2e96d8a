package doctor

import (
	"testing"

	"github.com/example/go-gagspeech/internal/phoneme"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		want    int
		wantErr bool
	}{
		{"http", "8080", 8080, false},
		{"zero", "0", 0, false},
		{"max", "65535", 65535, false},
		{"too large", "65536", 0, true},
		{"negative", "-1", 0, true},
		{"empty", "", 0, true},
		{"named", "http", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePort(tt.port)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePort(%q) = (%d,nil); want error", tt.port, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("parsePort(%q) error: %v", tt.port, err)
			}

			if got != tt.want {
				t.Fatalf("parsePort(%q) = %d; want %d", tt.port, got, tt.want)
			}
		})
	}
}

func TestCheckListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"all interfaces", ":8080", false},
		{"loopback", "127.0.0.1:9000", false},
		{"ipv6", "[::1]:8080", false},
		{"missing port", "localhost", true},
		{"empty", "", true},
		{"bad port", "localhost:http", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkListenAddr(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkListenAddr(%q) = %v; wantErr=%v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestValidPhonemes(t *testing.T) {
	if validPhonemes(nil) {
		t.Error("empty phonemes should be invalid")
	}
	if validPhonemes([]phoneme.Phoneme{phoneme.K, "QQ"}) {
		t.Error("unknown phoneme should be invalid")
	}
	if !validPhonemes([]phoneme.Phoneme{phoneme.K, phoneme.AE, phoneme.T}) {
		t.Error("K AE T should be valid")
	}
}

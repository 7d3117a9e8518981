package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type slotRequest struct {
	Date string `validate:"required,ymd"`
	Time string `validate:"required,hhmm"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	if err := RegisterOn(v); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		req   slotRequest
		valid bool
	}{
		{"valid", slotRequest{"2026-10-19", "09:30"}, true},
		{"bad date", slotRequest{"19/10/2026", "09:30"}, false},
		{"impossible date", slotRequest{"2026-02-30", "09:30"}, false},
		{"unpadded time", slotRequest{"2026-10-19", "9:30"}, false},
		{"end of day is not a start", slotRequest{"2026-10-19", "24:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err == nil) != tt.valid {
				t.Errorf("valid=%t, err=%v", tt.valid, err)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("ana@example.com") {
		t.Error("expected valid")
	}
	for _, bad := range []string{"", "ana", "ana@", "@example.com"} {
		if IsEmail(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	for _, email := range []string{"", "no-at-sign", "user@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true", email)
		}
	}
}

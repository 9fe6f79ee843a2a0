package config

import "testing"

func TestValidateAPIAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"loopback_ok", "127.0.0.1:8000", false},
		{"remote_ok", "192.168.1.100:9000", false},
		{"wildcard_unroutable", "0.0.0.0:8000", true},
		{"port_zero", "127.0.0.1:0", true},
		{"missing_port", "127.0.0.1", true},
		{"hostname", "localhost:8000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.APIAddr = tt.addr
			err := ValidateAPIAddress()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAPIAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "json"} {
		Global.Output = format
		if err := ValidateOutputFormat(); err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", format, err)
		}
	}

	Global.Output = "yaml"
	if err := ValidateOutputFormat(); err == nil {
		t.Error("expected error for yaml output")
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		timeout int
		wantErr bool
	}{
		{1, false},
		{8, false},
		{300, false},
		{0, true},
		{301, true},
	}

	for _, tt := range tests {
		Global.Timeout = tt.timeout
		err := ValidateTimeout()
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTimeout(%d) error = %v, wantErr %v", tt.timeout, err, tt.wantErr)
		}
	}
}

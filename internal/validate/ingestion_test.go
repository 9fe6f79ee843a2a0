package validate

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// decodeRequest decodes a JSON body the same way the HTTP handler does
func decodeRequest(t *testing.T, body string) (any, any) {
	t.Helper()
	var req struct {
		IDs      any `json:"ids"`
		Priority any `json:"priority"`
	}
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("failed to decode %s: %v", body, err)
	}
	return req.IDs, req.Priority
}

// TestIngestRequest tests request validation order and messages
func TestIngestRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantErr      error
		wantIDs      []int
		wantPriority string
	}{
		{"valid high", `{"ids":[1,2,3,4,5],"priority":"HIGH"}`, nil, []int{1, 2, 3, 4, 5}, "HIGH"},
		{"boundary ids", `{"ids":[1,1000000007],"priority":"LOW"}`, nil, []int{1, 1000000007}, "LOW"},
		{"integral float accepted", `{"ids":[2.0],"priority":"MEDIUM"}`, nil, []int{2}, "MEDIUM"},
		{"missing ids", `{"priority":"HIGH"}`, ErrInvalidIDs, nil, ""},
		{"empty ids", `{"ids":[],"priority":"HIGH"}`, ErrInvalidIDs, nil, ""},
		{"ids not an array", `{"ids":5,"priority":"HIGH"}`, ErrInvalidIDs, nil, ""},
		{"zero id", `{"ids":[0],"priority":"HIGH"}`, ErrIDOutOfRange, nil, ""},
		{"id above max", `{"ids":[1000000008],"priority":"HIGH"}`, ErrIDOutOfRange, nil, ""},
		{"fractional id", `{"ids":[1.5],"priority":"HIGH"}`, ErrIDOutOfRange, nil, ""},
		{"string id", `{"ids":["1"],"priority":"HIGH"}`, ErrIDOutOfRange, nil, ""},
		{"ids checked before priority", `{"ids":[-1],"priority":"URGENT"}`, ErrIDOutOfRange, nil, ""},
		{"missing priority", `{"ids":[1]}`, ErrInvalidPriority, nil, ""},
		{"lowercase priority", `{"ids":[1],"priority":"high"}`, ErrInvalidPriority, nil, ""},
		{"numeric priority", `{"ids":[1],"priority":3}`, ErrInvalidPriority, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, priority := decodeRequest(t, tt.body)
			gotIDs, gotPriority, err := IngestRequest(ids, priority)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("IngestRequest() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("IngestRequest() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("IngestRequest() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
			if gotPriority != tt.wantPriority {
				t.Errorf("IngestRequest() priority = %q, want %q", gotPriority, tt.wantPriority)
			}
		})
	}
}

// TestIdentifierList tests typed identifier validation used by the CLI
func TestIdentifierList(t *testing.T) {
	if err := IdentifierList([]int{1, 2, 3}); err != nil {
		t.Errorf("IdentifierList() unexpected error: %v", err)
	}
	if err := IdentifierList(nil); !errors.Is(err, ErrInvalidIDs) {
		t.Errorf("IdentifierList(nil) error = %v, want %v", err, ErrInvalidIDs)
	}
	if err := IdentifierList([]int{5, MaxIdentifier + 1}); !errors.Is(err, ErrIDOutOfRange) {
		t.Errorf("IdentifierList() error = %v, want %v", err, ErrIDOutOfRange)
	}
}

// TestPriorityName tests tier name validation
func TestPriorityName(t *testing.T) {
	for _, p := range []string{"HIGH", "MEDIUM", "LOW"} {
		if err := PriorityName(p); err != nil {
			t.Errorf("PriorityName(%q) unexpected error: %v", p, err)
		}
	}
	for _, p := range []string{"", "Low", "CRITICAL"} {
		if err := PriorityName(p); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("PriorityName(%q) error = %v, want %v", p, err, ErrInvalidPriority)
		}
	}
}

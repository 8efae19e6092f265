package vectorstore

import (
	"context"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestGRPCAddress(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "default HTTP port",
			urlStr:   "http://localhost:6333",
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "custom port",
			urlStr:   "http://qdrant.internal:9000",
			wantHost: "qdrant.internal",
			wantPort: 9001,
		},
		{
			name:     "no port",
			urlStr:   "http://localhost",
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:     "no hostname",
			urlStr:   "http://:6333",
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := grpcAddress(tt.urlStr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("grpcAddress(%q) expected error", tt.urlStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("grpcAddress(%q) error = %v", tt.urlStr, err)
			}
			if host != tt.wantHost || port != tt.wantPort {
				t.Errorf("grpcAddress(%q) = %s:%d, want %s:%d", tt.urlStr, host, port, tt.wantHost, tt.wantPort)
			}
		})
	}
}

func TestNewQdrantStore_InvalidURL(t *testing.T) {
	_, err := NewQdrantStore("://invalid")
	if err == nil {
		t.Error("NewQdrantStore() with invalid URL should return error")
	}
}

func TestQdrantStore_EarlyReturns(t *testing.T) {
	// None of these reach the client
	store := &QdrantStore{}
	ctx := context.Background()

	if err := store.Upsert(ctx, "segments", nil); err != nil {
		t.Errorf("Upsert() with no points error = %v", err)
	}
	if err := store.Delete(ctx, "segments", []string{}); err != nil {
		t.Errorf("Delete() with no IDs error = %v", err)
	}
	for _, k := range []int{0, -1} {
		if _, err := store.Search(ctx, "segments", []float32{1, 2}, k, nil); err == nil {
			t.Errorf("Search() with k=%d should return error", k)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]any
		want    []string // keys of the must conditions, in order
	}{
		{name: "nil", filters: nil},
		{name: "unknown key", filters: map[string]any{"folder": "x"}},
		{name: "empty value", filters: map[string]any{FilterMeetingID: ""}},
		{
			name:    "meeting",
			filters: map[string]any{FilterMeetingID: "5e0c"},
			want:    []string{FilterMeetingID},
		},
		{
			name:    "meeting and source",
			filters: map[string]any{FilterSourceType: "audio", FilterMeetingID: "5e0c"},
			want:    []string{FilterMeetingID, FilterSourceType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFilter(tt.filters)
			if len(tt.want) == 0 {
				if got != nil {
					t.Errorf("buildFilter() = %v, want nil", got)
				}
				return
			}
			if got == nil || len(got.Must) != len(tt.want) {
				t.Fatalf("buildFilter() = %v, want %d conditions", got, len(tt.want))
			}
			for i, key := range tt.want {
				if field := got.Must[i].GetField(); field == nil || field.Key != key {
					t.Errorf("condition %d = %v, want key %s", i, got.Must[i], key)
				}
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	if got := convertPayloadToMap(nil); got == nil || len(got) != 0 {
		t.Errorf("convertPayloadToMap(nil) = %v, want empty map", got)
	}

	payload := qdrant.NewValueMap(map[string]any{
		"meeting_id":    "5e0c",
		"segment_index": 3,
		"minute":        2,
		"untitled":      true,
	})
	got := convertPayloadToMap(payload)
	if got["meeting_id"] != "5e0c" {
		t.Errorf("meeting_id = %v", got["meeting_id"])
	}
	if got["segment_index"] != int64(3) {
		t.Errorf("segment_index = %#v, want int64(3)", got["segment_index"])
	}
	if got["untitled"] != true {
		t.Errorf("untitled = %v", got["untitled"])
	}
}

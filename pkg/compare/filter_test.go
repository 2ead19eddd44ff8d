package compare

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		objects  map[string]int64
		includes []string
		excludes []string
		want     map[string]int64
		wantErr  bool
	}{
		{
			name:    "no patterns returns snapshot unchanged",
			objects: map[string]int64{"a.txt": 1},
			want:    map[string]int64{"a.txt": 1},
		},
		{
			name:     "exclude subtree",
			objects:  map[string]int64{"logs/2024/app.log": 1, "data/report.csv": 2},
			excludes: []string{"logs/**"},
			want:     map[string]int64{"data/report.csv": 2},
		},
		{
			name:     "single star does not cross slashes",
			objects:  map[string]int64{"logs/app.log": 1, "logs/2024/app.log": 2},
			excludes: []string{"logs/*"},
			want:     map[string]int64{"logs/2024/app.log": 2},
		},
		{
			name:     "includes act as whitelist",
			objects:  map[string]int64{"a.jpg": 1, "b.png": 2, "c.txt": 3},
			includes: []string{"*.jpg", "*.png"},
			want:     map[string]int64{"a.jpg": 1, "b.png": 2},
		},
		{
			name:     "excludes apply after includes",
			objects:  map[string]int64{"img/a.jpg": 1, "img/tmp/b.jpg": 2},
			includes: []string{"img/**"},
			excludes: []string{"img/tmp/**"},
			want:     map[string]int64{"img/a.jpg": 1},
		},
		{
			name:     "bad exclude pattern",
			objects:  map[string]int64{"a.txt": 1},
			excludes: []string{"["},
			wantErr:  true,
		},
		{
			name:     "bad include pattern",
			objects:  map[string]int64{"a.txt": 1},
			includes: []string{"["},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(snapshotOf(tt.objects), tt.includes, tt.excludes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Filter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got.Objects, tt.want) {
				t.Errorf("Filter() objects = %v, want %v", got.Objects, tt.want)
			}
		})
	}
}

func TestFilterPreservesStats(t *testing.T) {
	snapshot := snapshotOf(map[string]int64{"keep.txt": 1, "drop.log": 2})
	snapshot.SkippedRows = 3
	snapshot.Files = 2

	got, err := Filter(snapshot, nil, []string{"*.log"})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got.SkippedRows != 3 || got.Files != 2 {
		t.Errorf("stats = (%d skipped, %d files), want (3, 2)", got.SkippedRows, got.Files)
	}
	if !reflect.DeepEqual(got.Objects, map[string]int64{"keep.txt": 1}) {
		t.Errorf("objects = %v", got.Objects)
	}
}

func TestFilterNilSnapshot(t *testing.T) {
	got, err := Filter(nil, nil, []string{"*.log"})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
}

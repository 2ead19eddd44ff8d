package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
)

const sampleManifest = `{
  "sourceBucket": "prod-assets",
  "destinationBucket": "arn:aws:s3:::prod-inventory",
  "version": "2016-11-30",
  "creationTimestamp": "1704067200000",
  "fileFormat": "CSV",
  "fileSchema": "Bucket, Key, VersionId, IsLatest, IsDeleteMarker, Size, LastModifiedDate, ETag",
  "files": [
    {
      "key": "prod-assets/daily/data/part-000.csv.gz",
      "size": 2147483647,
      "MD5checksum": "f11166069f1990abeb9c97ace9cdfabc"
    },
    {
      "key": "prod-assets/daily/data/part-001.csv.gz",
      "size": 1024,
      "MD5checksum": "a54708b4d0826711935ab2fa1d5a5e37"
    }
  ]
}`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	require.Equal(t, "prod-assets", m.SourceBucket)
	require.Equal(t, "CSV", m.FileFormat)
	require.Len(t, m.Files, 2)
	require.Equal(t, "prod-assets/daily/data/part-000.csv.gz", m.Files[0].Key)
	require.Equal(t, int64(2147483647), m.Files[0].Size)

	schema, err := m.Schema()
	require.NoError(t, err)
	require.Equal(t, Schema{KeyIndex: 1, SizeIndex: 5}, schema)
}

func TestParseManifestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "<Error><Code>PermanentRedirect</Code></Error>"},
		{"truncated", `{"fileFormat": "CSV", "files": [`},
		{"no files", `{"fileFormat": "CSV", "files": []}`},
		{"files absent", `{"fileFormat": "CSV"}`},
		{"parquet", `{"fileFormat": "Parquet", "files": [{"key": "a.parquet"}]}`},
		{"orc", `{"fileFormat": "ORC", "files": [{"key": "a.orc"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			require.Error(t, err)
			require.True(t, inverr.IsFormat(err), "want a format error, got %v", err)
		})
	}
}

func TestManifestSchema(t *testing.T) {
	tests := []struct {
		name       string
		fileSchema string
		want       Schema
		wantErr    bool
	}{
		{
			name:       "standard columns",
			fileSchema: "Bucket, Key, VersionId, IsLatest, IsDeleteMarker, Size, LastModifiedDate, ETag",
			want:       Schema{KeyIndex: 1, SizeIndex: 5},
		},
		{
			name:       "reduced columns",
			fileSchema: "Bucket, Key, Size",
			want:       Schema{KeyIndex: 1, SizeIndex: 2},
		},
		{
			name:       "no spaces after commas",
			fileSchema: "Bucket,Key,Size,LastModifiedDate",
			want:       Schema{KeyIndex: 1, SizeIndex: 2},
		},
		{
			name:       "absent falls back to standard layout",
			fileSchema: "",
			want:       Schema{KeyIndex: 1, SizeIndex: 5},
		},
		{
			name:       "missing size column",
			fileSchema: "Bucket, Key, ETag",
			wantErr:    true,
		},
		{
			name:       "missing key column",
			fileSchema: "Bucket, Size",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{
				FileFormat: "CSV",
				FileSchema: tt.fileSchema,
				Files:      []ManifestFile{{Key: "data/part-0.csv.gz"}},
			}
			got, err := m.Schema()
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, inverr.IsFormat(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

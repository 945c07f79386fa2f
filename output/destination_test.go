package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDestination(t *testing.T) {
	tests := []struct {
		in   string
		want Destination
	}{
		{"", Destination{Kind: KindStdout}},
		{"-", Destination{Kind: KindStdout}},
		{"discard", Destination{Kind: KindDiscard}},
		{"primes.txt", Destination{Kind: KindFile, Dir: ".", Name: "primes.txt"}},
		{"out/run1/primes.txt.gz", Destination{Kind: KindFile, Dir: "out/run1", Name: "primes.txt.gz"}},
		{"/tmp/primes.txt", Destination{Kind: KindFile, Dir: "/tmp", Name: "primes.txt"}},
		{"/primes.txt", Destination{Kind: KindFile, Dir: "/", Name: "primes.txt"}},
		{"s3://bucket/primes.txt", Destination{Kind: KindS3, Bucket: "bucket", Name: "primes.txt"}},
		{"s3://bucket/a/b/primes.zst", Destination{Kind: KindS3, Bucket: "bucket", Dir: "a/b", Name: "primes.zst"}},
		{"minio://localhost:9000/bucket/primes.lz4", Destination{Kind: KindMinIO, Host: "localhost:9000", Bucket: "bucket", Name: "primes.lz4"}},
		{"minio://m:9000/bucket/x/primes.txt", Destination{Kind: KindMinIO, Host: "m:9000", Bucket: "bucket", Dir: "x", Name: "primes.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDestination(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDestination_Invalid(t *testing.T) {
	for _, in := range []string{
		"s3://",
		"s3://bucket",
		"s3://bucket/",
		"s3://bucket/dir/",
		"minio://host/bucket",
		"minio:///bucket/key",
		"gs://bucket/key",
		"out/",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDestination(in)
			assert.ErrorIs(t, err, ErrInvalidDestination)
		})
	}
}

func TestDestination_String(t *testing.T) {
	for _, in := range []string{
		"-",
		"discard",
		"primes.txt",
		"out/primes.txt",
		"/primes.txt",
		"s3://bucket/a/primes.txt",
		"minio://localhost:9000/bucket/primes.txt",
	} {
		d, err := ParseDestination(in)
		require.NoError(t, err)
		assert.Equal(t, in, d.String())
	}
}

func TestDestination_Sibling(t *testing.T) {
	d, err := ParseDestination("s3://bucket/run/primes.txt.gz")
	require.NoError(t, err)

	s := d.Sibling("primes.roaring")
	assert.Equal(t, "s3://bucket/run/primes.roaring", s.String())
	assert.Equal(t, "primes.txt.gz", d.Name)
	assert.False(t, s.IsStream())
	assert.True(t, Destination{Kind: KindDiscard}.IsStream())
}

package output

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrInvalidDestination is returned for destinations that cannot be parsed.
var ErrInvalidDestination = errors.New("invalid destination")

// Kind identifies the backend a destination refers to.
type Kind int

const (
	KindStdout Kind = iota
	KindDiscard
	KindFile
	KindS3
	KindMinIO
)

func (k Kind) String() string {
	switch k {
	case KindStdout:
		return "stdout"
	case KindDiscard:
		return "discard"
	case KindFile:
		return "file"
	case KindS3:
		return "s3"
	case KindMinIO:
		return "minio"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Destination is a parsed output location.
type Destination struct {
	Kind Kind
	// Host is the MinIO endpoint (host:port).
	Host string
	// Bucket is set for object store destinations.
	Bucket string
	// Dir is the directory (file) or key prefix (object stores) of the blob.
	Dir string
	// Name is the blob name relative to Dir.
	Name string
}

// ParseDestination parses a destination string.
func ParseDestination(s string) (Destination, error) {
	switch {
	case s == "" || s == "-":
		return Destination{Kind: KindStdout}, nil
	case s == "discard":
		return Destination{Kind: KindDiscard}, nil
	case strings.HasPrefix(s, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(s, "s3://"), "/")
		if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Destination{}, fmt.Errorf("%w: %q: want s3://bucket/key", ErrInvalidDestination, s)
		}
		dir, name := path.Split(key)
		return Destination{Kind: KindS3, Bucket: bucket, Dir: strings.TrimSuffix(dir, "/"), Name: name}, nil
	case strings.HasPrefix(s, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(s, "minio://"), "/", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" || strings.HasSuffix(parts[2], "/") {
			return Destination{}, fmt.Errorf("%w: %q: want minio://host/bucket/key", ErrInvalidDestination, s)
		}
		dir, name := path.Split(parts[2])
		return Destination{Kind: KindMinIO, Host: parts[0], Bucket: parts[1], Dir: strings.TrimSuffix(dir, "/"), Name: name}, nil
	case strings.Contains(s, "://"):
		return Destination{}, fmt.Errorf("%w: %q: unsupported scheme", ErrInvalidDestination, s)
	}

	if strings.HasSuffix(s, "/") {
		return Destination{}, fmt.Errorf("%w: %q is a directory", ErrInvalidDestination, s)
	}
	dir, name := path.Split(s)
	switch dir {
	case "":
		dir = "."
	case "/":
	default:
		dir = strings.TrimSuffix(dir, "/")
	}
	return Destination{Kind: KindFile, Dir: dir, Name: name}, nil
}

// String returns the destination in the form accepted by ParseDestination.
func (d Destination) String() string {
	key := d.Name
	if d.Dir != "" && d.Dir != "." {
		key = d.Dir + "/" + d.Name
	}
	switch d.Kind {
	case KindStdout:
		return "-"
	case KindDiscard:
		return "discard"
	case KindS3:
		return "s3://" + d.Bucket + "/" + key
	case KindMinIO:
		return "minio://" + d.Host + "/" + d.Bucket + "/" + key
	default:
		if d.Dir == "/" {
			return "/" + d.Name
		}
		return key
	}
}

// Sibling returns a destination in the same directory or bucket with another name.
func (d Destination) Sibling(name string) Destination {
	d.Name = name
	return d
}

// IsStream reports whether the destination is a process stream rather than a blob.
func (d Destination) IsStream() bool {
	return d.Kind == KindStdout || d.Kind == KindDiscard
}

package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"decochanges/core/storage"

	"github.com/minio/minio-go/v7"
)

const s3Scheme = "s3://"

// IsObjectPath reports whether path addresses an object in storage rather
// than the local filesystem.
func IsObjectPath(path string) bool {
	return strings.HasPrefix(path, s3Scheme)
}

// Loader reads decoration exports into Snapshots. Local paths are read from
// disk; "s3://bucket/object" paths are fetched through the storage client.
type Loader struct {
	client storage.Client
	cfg    Config
}

// NewLoader creates a loader. The storage client may be nil when only local
// paths are loaded.
func NewLoader(client storage.Client, cfg Config) *Loader {
	return &Loader{client: client, cfg: cfg}
}

// Load reads and parses the export at path into a Snapshot.
// It returns a *FormatError when the content does not match the encoding
// detected from the extension, and a plain wrapped error for IO failures.
func (l *Loader) Load(ctx context.Context, path string) (*Snapshot, error) {
	content, err := l.read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	return l.Parse(path, content)
}

// Parse decodes export content using the encoding detected from the path's
// extension. Detection is by extension only: .json parses as a structured
// export, .txt as a delimited one, and the two are never mixed.
func (l *Loader) Parse(path string, content []byte) (*Snapshot, error) {
	content = stripWarningLine(content)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		snap, err := l.parseStructured(content)
		if err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		return snap, nil
	case ".txt":
		return l.parseDelimited(content), nil
	default:
		return nil, &FormatError{Path: path, Err: ErrUnsupportedExtension}
	}
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	rest, ok := strings.CutPrefix(path, s3Scheme)
	if !ok {
		return os.ReadFile(path)
	}

	if l.client == nil {
		return nil, errors.New("no storage client configured for s3 paths")
	}
	bucket, object, found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return nil, fmt.Errorf("malformed object path %q (expected s3://bucket/object)", path)
	}

	obj, err := l.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// parseStructured decodes a flat JSON object of name to quantity. The token
// decoder is used instead of a map so the source's key order survives into
// the Snapshot.
func (l *Loader) parseStructured(content []byte) (*Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a top-level JSON object")
	}

	snap := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		snap.Set(name, l.quantityOf(value))
	}

	// Consume the closing brace so trailing garbage still fails the parse.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON object")
	}

	return snap, nil
}

// parseDelimited decodes one "name,quantity" record per line. Blank lines and
// lines without a name are skipped. The delimited form has no structural
// requirements left to violate after that, so parsing cannot fail.
func (l *Loader) parseDelimited(content []byte) *Snapshot {
	snap := New()
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest, _ := strings.Cut(line, ",")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		quantity := l.cfg.DefaultQuantity
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil && n >= 0 {
			quantity = n
		}
		snap.Set(name, quantity)
	}
	return snap
}

// quantityOf extracts a non-negative integer quantity from a decoded JSON
// value, falling back to the configured default for anything else.
func (l *Loader) quantityOf(value any) int {
	num, ok := value.(json.Number)
	if !ok {
		return l.cfg.DefaultQuantity
	}
	n, err := strconv.Atoi(num.String())
	if err != nil || n < 0 {
		return l.cfg.DefaultQuantity
	}
	return n
}

// stripWarningLine removes the "WARNING:" banner some export mods prepend.
func stripWarningLine(content []byte) []byte {
	if !bytes.HasPrefix(content, []byte("WARNING:")) {
		return content
	}
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		return content[i+1:]
	}
	return nil
}

package compare

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"decochanges/core/diff"
	"decochanges/core/snapshot"
	"decochanges/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service compares decoration exports stored in the bucket.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	loader *snapshot.Loader
}

// NewService creates a new compare service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, cfg snapshot.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		loader: snapshot.NewLoader(client, cfg),
	}
}

// Compare loads the two named export objects and returns the difference
// report. The loads run in parallel; each yields an independent snapshot,
// so there is no shared state between them.
func (s *Service) Compare(ctx context.Context, oldObject, newObject string) (*diff.Report, error) {
	var before, after *snapshot.Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		before, err = s.loadObject(ctx, oldObject)
		return err
	})
	g.Go(func() error {
		var err error
		after, err = s.loadObject(ctx, newObject)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return diff.Diff(before, after), nil
}

func (s *Service) loadObject(ctx context.Context, object string) (*snapshot.Snapshot, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %s: %w", object, err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", object, err)
	}

	return s.loader.Parse(object, content)
}

// ListExports returns the export object names in the bucket, sorted.
func (s *Service) ListExports(ctx context.Context) ([]string, error) {
	names := []string{}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", info.Err)
		}
		switch strings.ToLower(path.Ext(info.Key)) {
		case ".json", ".txt":
			names = append(names, info.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

// UploadExport stores a new export object in the bucket.
func (s *Service) UploadExport(ctx context.Context, name string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload export %s: %w", name, err)
	}
	return nil
}

package snapshot

import (
	"context"
	"fmt"
	"os"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/infrastructure/aws/storage"
)

type FileSource struct {
	Path string
}

func (s *FileSource) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s *FileSource) String() string {
	return "file " + s.Path
}

type S3Source struct {
	Client storage.S3Client
	Bucket string
	Key    string
}

func (s *S3Source) Read(ctx context.Context) ([]byte, error) {
	return s.Client.DownloadFile(ctx, s.Key)
}

func (s *S3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

type SnapshotRepository interface {
	FindLatest(name string) (*entity.Snapshot, error)
}

// SQLiteSource reads the latest snapshot stored under Name.
type SQLiteSource struct {
	Repo SnapshotRepository
	Name string
}

func (s *SQLiteSource) Read(_ context.Context) ([]byte, error) {
	snapshot, err := s.Repo.FindLatest(s.Name)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return nil, fmt.Errorf("no snapshot named %q", s.Name)
	}
	return snapshot.Content, nil
}

func (s *SQLiteSource) String() string {
	return fmt.Sprintf("sqlite snapshot %q", s.Name)
}

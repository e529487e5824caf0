package snapshot

import (
	"context"
	"fmt"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type SnapshotWriter interface {
	Save(snapshot *entity.Snapshot) error
}

// Importer copies a snapshot from any Source into the sqlite database, so it
// can later be served through SQLiteSource. Documents are validated the same
// way the API does at startup, a broken one is never stored.
type Importer struct {
	Repo     SnapshotWriter
	Validate *validator.Validate
}

func NewImporter(repo SnapshotWriter, validate *validator.Validate) *Importer {
	return &Importer{Repo: repo, Validate: validate}
}

// Import stores the document read from src under name and returns the stored snapshot.
func (i *Importer) Import(ctx context.Context, src Source, name string) (*entity.Snapshot, int, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read snapshot from %s: %w", src, err)
	}

	data, err := Decode(raw, i.Validate)
	if err != nil {
		return nil, 0, err
	}

	snapshot := &entity.Snapshot{
		Name:      name,
		Content:   raw,
		CreatedAt: utils.NowUTC(),
	}
	if err := i.Repo.Save(snapshot); err != nil {
		return nil, 0, fmt.Errorf("save snapshot %q: %w", name, err)
	}

	log.Infof("Imported %d processos from %s as %q", len(data.Content), src, name)
	return snapshot, len(data.Content), nil
}

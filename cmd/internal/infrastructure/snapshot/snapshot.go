package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"processos/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Source is where the processos snapshot is read from. It is only read once, at startup.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

// Load reads, decodes and validates the whole snapshot. Any failure means the
// snapshot cannot be served, there is no partial result.
func Load(ctx context.Context, src Source, validate *validator.Validate) (*entity.ProcessosData, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read snapshot from %s: %w", src, err)
	}
	return Decode(raw, validate)
}

func Decode(raw []byte, validate *validator.Validate) (*entity.ProcessosData, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
	}

	var data entity.ProcessosData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if err := validate.Struct(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &data, nil
}

package memory

import (
	"fmt"
	"processos/cmd/internal/domain/entity"
)

// ProcessoStore keeps the whole processos snapshot in memory.
//
// It is built once at startup and never modified afterward, so it is safe
// for concurrent use without any locking. Callers must not modify the
// returned processos.
type ProcessoStore struct {
	processos []*entity.Processo
	byNumero  map[string]*entity.Processo
}

// NewProcessoStore indexes the processos by their numero.
// Duplicated numbers are rejected, since the numero is the only lookup and cursor key.
func NewProcessoStore(processos []*entity.Processo) (*ProcessoStore, error) {
	byNumero := make(map[string]*entity.Processo, len(processos))
	for _, p := range processos {
		if p == nil {
			return nil, fmt.Errorf("processo store: nil processo in snapshot")
		}

		if _, exists := byNumero[p.NumeroProcesso]; exists {
			return nil, fmt.Errorf("processo store: duplicated numeroProcesso %q", p.NumeroProcesso)
		}
		byNumero[p.NumeroProcesso] = p
	}

	return &ProcessoStore{
		processos: processos,
		byNumero:  byNumero,
	}, nil
}

// FindAll returns every processo in load order.
func (s *ProcessoStore) FindAll() []*entity.Processo {
	return s.processos
}

// FindByNumeroProcesso returns nil if no processo has exactly the given number.
func (s *ProcessoStore) FindByNumeroProcesso(numero string) *entity.Processo {
	return s.byNumero[numero]
}

func (s *ProcessoStore) Count() int {
	return len(s.processos)
}

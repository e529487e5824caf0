package service

import (
	"processos/cmd/internal/contract"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/domain/policy"
	"strings"
)

// resolvedProcesso pairs a processo with its current tramitação, so the
// tramitação is only resolved once per request.
type resolvedProcesso struct {
	processo   *entity.Processo
	tramitacao *entity.Tramitacao
}

// processoFilter holds the list filters. Empty values are not applied.
type processoFilter struct {
	term     string
	tribunal string
	grau     string
}

func newProcessoFilter(q *contract.ListProcessosQuery) processoFilter {
	return processoFilter{
		term:     strings.ToLower(q.Q),
		tribunal: q.Tribunal,
		grau:     q.Grau,
	}
}

// filterProcessos keeps the store order. Processos without a current
// tramitação are always left out, regardless of the other filters.
func filterProcessos(processos []*entity.Processo, f processoFilter) []resolvedProcesso {
	filtered := make([]resolvedProcesso, 0, len(processos))
	for _, p := range processos {
		t := policy.CurrentTramitacao(p)
		if t == nil {
			continue
		}

		r := resolvedProcesso{processo: p, tramitacao: t}
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (f processoFilter) matches(r resolvedProcesso) bool {
	if f.term != "" && !matchesTerm(r, f.term) {
		return false
	}

	if f.tribunal != "" && r.processo.SiglaTribunal != f.tribunal {
		return false
	}

	if f.grau != "" && r.tramitacao.Grau.Sigla != f.grau {
		return false
	}
	return true
}

// matchesTerm looks for the lowercase term in the processo number and in the
// party names, classes and assuntos of the current tramitação.
func matchesTerm(r resolvedProcesso, term string) bool {
	if containsFold(r.processo.NumeroProcesso, term) {
		return true
	}

	t := r.tramitacao
	for _, parte := range t.Partes {
		if containsFold(parte.Nome, term) {
			return true
		}
	}

	for _, c := range t.Classe {
		if containsFold(c.Descricao, term) {
			return true
		}
	}

	for _, a := range t.Assunto {
		if containsFold(a.Descricao, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

type processoPage struct {
	items      []resolvedProcesso
	nextCursor *string
}

// paginate slices up to limit processos right after the cursor.
//
// A cursor that is not in the filtered list (stale, or filtered out since it
// was issued) restarts from the first processo instead of failing.
// The next cursor is only set when the page is full and more processos remain.
func paginate(filtered []resolvedProcesso, cursor string, limit int) processoPage {
	start := 0
	if cursor != "" {
		for i, r := range filtered {
			if r.processo.NumeroProcesso == cursor {
				start = i + 1
				break
			}
		}
	}

	end := min(start+limit, len(filtered))
	items := filtered[start:end]

	var next *string
	if len(items) == limit && end < len(filtered) {
		last := items[len(items)-1].processo.NumeroProcesso
		next = &last
	}

	return processoPage{
		items:      items,
		nextCursor: next,
	}
}

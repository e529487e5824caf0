package policy

import (
	"processos/cmd/internal/domain/entity"
	"time"
)

// Layouts accepted for the snapshot timestamps, tried in order.
// Timestamps without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CurrentTramitacao picks the tramitação that represents where the process
// stands now:
//
// 1. Active tramitações win over inactive ones. If none is active, all of them compete.
//
// 2. The most recent `dataHoraUltimaDistribuicao` wins.
//
// 3. On a date tie, the superior instance (greater grau.numero) wins.
//
// 4. Any remaining tie keeps the first one in the original order.
//
// It returns nil if the process has no tramitações. The process is never modified.
func CurrentTramitacao(p *entity.Processo) *entity.Tramitacao {
	if p == nil || len(p.Tramitacoes) == 0 {
		return nil
	}

	hasActive := false
	for _, t := range p.Tramitacoes {
		if t.Ativo {
			hasActive = true
			break
		}
	}

	var best *entity.Tramitacao
	var bestKey distributionKey
	for _, t := range p.Tramitacoes {
		if hasActive && !t.Ativo {
			continue
		}

		key := newDistributionKey(t)
		if best == nil || key.beats(bestKey) {
			best = t
			bestKey = key
		}
	}
	return best
}

// ParseTimestamp parses an ISO-8601 timestamp from the snapshot.
// The boolean is false if none of the known layouts match.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// distributionKey is the ordering key of a tramitação.
// An unparseable date is older than any parseable one.
type distributionKey struct {
	valid bool
	at    time.Time
	grau  int
}

func newDistributionKey(t *entity.Tramitacao) distributionKey {
	at, ok := ParseTimestamp(t.DataHoraUltimaDistribuicao)
	return distributionKey{
		valid: ok,
		at:    at,
		grau:  t.Grau.Numero,
	}
}

// beats reports whether k strictly sorts before other.
func (k distributionKey) beats(other distributionKey) bool {
	if k.valid != other.valid {
		return k.valid
	}

	if k.valid && !k.at.Equal(other.at) {
		return k.at.After(other.at)
	}
	return k.grau > other.grau
}

package service

import (
	"processos/cmd/internal/contract"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/domain/policy"
	"strings"
)

const orgaoJulgadorSeparator = ", "

// isDisplayable reports whether a current tramitação can be projected.
// One without a last movement has nothing to show yet.
func isDisplayable(t *entity.Tramitacao) bool {
	return t != nil && t.UltimoMovimento != nil
}

// displayableTramitacao returns the current tramitação of the processo, or nil
// if there is none or it cannot be displayed.
func displayableTramitacao(p *entity.Processo) *entity.Tramitacao {
	t := policy.CurrentTramitacao(p)
	if !isDisplayable(t) {
		return nil
	}
	return t
}

func toProcessoSummary(p *entity.Processo) *contract.ProcessoSummary {
	return toSummary(resolvedProcesso{processo: p, tramitacao: policy.CurrentTramitacao(p)})
}

// toSummary projects an already resolved processo, returning nil if it is not displayable.
func toSummary(r resolvedProcesso) *contract.ProcessoSummary {
	t := r.tramitacao
	if !isDisplayable(t) {
		return nil
	}
	mov := t.UltimoMovimento

	var classePrincipal, assuntoPrincipal string
	if len(t.Classe) > 0 {
		classePrincipal = t.Classe[0].Descricao
	}
	if len(t.Assunto) > 0 {
		assuntoPrincipal = t.Assunto[0].Descricao
	}

	return &contract.ProcessoSummary{
		NumeroProcesso:   r.processo.NumeroProcesso,
		SiglaTribunal:    r.processo.SiglaTribunal,
		GrauAtual:        t.Grau.Sigla,
		ClassePrincipal:  classePrincipal,
		AssuntoPrincipal: assuntoPrincipal,
		UltimoMovimento: &contract.UltimoMovimentoResumo{
			DataHora:      mov.DataHora,
			Descricao:     mov.Descricao,
			OrgaoJulgador: strings.Join(mov.OrgaoJulgadorNomes(), orgaoJulgadorSeparator),
			Codigo:        mov.Codigo,
		},
		PartesResumo: toPartesResumo(t.Partes),
	}
}

func toProcessoDetail(p *entity.Processo) *contract.ProcessoDetail {
	t := displayableTramitacao(p)
	if t == nil {
		return nil
	}

	mov := t.UltimoMovimento
	orgaos := mov.OrgaoJulgadorNomes()

	return &contract.ProcessoDetail{
		NumeroProcesso:  p.NumeroProcesso,
		SiglaTribunal:   p.SiglaTribunal,
		NivelSigilo:     p.NivelSigilo,
		TramitacaoAtual: string(entity.StatusFromAtivo(t.Ativo)),
		Grau: &contract.GrauResponse{
			Sigla:  t.Grau.Sigla,
			Nome:   t.Grau.Nome,
			Numero: t.Grau.Numero,
		},
		OrgaoJulgador: strings.Join(orgaos, orgaoJulgadorSeparator),
		Classes:       toClassesResponse(t.Classe),
		Assuntos:      toAssuntosResponse(t.Assunto),
		DatasRelevantes: &contract.DatasRelevantes{
			Ajuizamento:        t.DataHoraAjuizamento,
			UltimaDistribuicao: t.DataHoraUltimaDistribuicao,
		},
		Partes: toPartesResponse(t.Partes),
		UltimoMovimento: &contract.UltimoMovimentoDetalhe{
			Data:          mov.DataHora,
			Descricao:     mov.Descricao,
			OrgaoJulgador: orgaos,
			Codigo:        mov.Codigo,
		},
	}
}

// toPartesResumo groups the party names by polo, keeping the tramitação order.
func toPartesResumo(partes []*entity.Parte) *contract.PartesResumo {
	resumo := &contract.PartesResumo{
		Ativo:   []string{},
		Passivo: []string{},
	}

	for _, p := range partes {
		switch p.Polo {
		case entity.PoloAtivo:
			resumo.Ativo = append(resumo.Ativo, p.Nome)
		case entity.PoloPassivo:
			resumo.Passivo = append(resumo.Passivo, p.Nome)
		}
	}
	return resumo
}

func toClassesResponse(cs []entity.Classe) []*contract.ClasseResponse {
	classes := make([]*contract.ClasseResponse, len(cs))
	for i, c := range cs {
		classes[i] = &contract.ClasseResponse{
			Codigo:    c.Codigo,
			Descricao: c.Descricao,
		}
	}
	return classes
}

func toAssuntosResponse(as []entity.Assunto) []*contract.AssuntoResponse {
	assuntos := make([]*contract.AssuntoResponse, len(as))
	for i, a := range as {
		assuntos[i] = &contract.AssuntoResponse{
			Codigo:     a.Codigo,
			Descricao:  a.Descricao,
			Hierarquia: a.Hierarquia,
		}
	}
	return assuntos
}

func toPartesResponse(ps []*entity.Parte) []*contract.ParteResponse {
	partes := make([]*contract.ParteResponse, len(ps))
	for i, p := range ps {
		partes[i] = toParteResp(p)
	}
	return partes
}

func toParteResp(p *entity.Parte) *contract.ParteResponse {
	reps := p.Representantes
	if len(reps) > contract.MaxRepresentantesPerParte {
		reps = reps[:contract.MaxRepresentantesPerParte]
	}

	representantes := make([]*contract.RepresentanteResponse, len(reps))
	for i, r := range reps {
		representantes[i] = &contract.RepresentanteResponse{
			TipoRepresentacao: r.TipoRepresentacao,
			Nome:              r.Nome,
			Situacao:          r.Situacao,
		}
	}

	return &contract.ParteResponse{
		Nome:           p.Nome,
		TipoParte:      p.TipoParte,
		Polo:           string(p.Polo),
		Representantes: representantes,
	}
}

package service

import (
	"net/http"
	"processos/cmd/internal/contract"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listQuery(mod func(q *contract.ListProcessosQuery)) *contract.ListProcessosQuery {
	q := &contract.ListProcessosQuery{Limit: contract.DefaultPageLimit}
	if mod != nil {
		mod(q)
	}
	return q
}

func numeros(items []*contract.ProcessoSummary) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.NumeroProcesso
	}
	return out
}

func requireAPIError(t *testing.T, err apierror.ErrorResponse, status int, code string) *apierror.APIError {
	t.Helper()

	require.NotNil(t, err)
	apierr, ok := err.(*apierror.APIError)
	require.True(t, ok, "expected *apierror.APIError, got %T", err)
	assert.Equal(t, status, apierr.Code())
	assert.Equal(t, code, apierr.ErrorCode)
	assert.NotEmpty(t, apierr.Message)
	return apierr
}

func TestListProcessos_SkipsProcessosWithoutTramitacoes(t *testing.T) {
	empty := validProcesso(numero(2))
	empty.Tramitacoes = []*entity.Tramitacao{}
	svc := newTestService(t, validProcesso(numero(1)), empty)

	resp, err := svc.ListProcessos(listQuery(nil))
	require.Nil(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, numero(1), resp.Items[0].NumeroProcesso)
	assert.Equal(t, "G1", resp.Items[0].GrauAtual)
	assert.Equal(t, "Procedimento Comum", resp.Items[0].ClassePrincipal)
	assert.Equal(t, "Dano Material", resp.Items[0].AssuntoPrincipal)
	assert.Nil(t, resp.NextCursor)
}

func TestListProcessos_CursorPages(t *testing.T) {
	svc := newTestService(t, sequentialProcessos(30)...)

	first, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Limit = 10 }))
	require.Nil(t, err)
	require.Len(t, first.Items, 10)
	assert.Equal(t, numero(1), first.Items[0].NumeroProcesso)
	assert.Equal(t, numero(10), first.Items[9].NumeroProcesso)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, numero(10), *first.NextCursor)

	second, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
		q.Limit = 10
		q.Cursor = *first.NextCursor
	}))
	require.Nil(t, err)
	require.Len(t, second.Items, 10)
	assert.Equal(t, numero(11), second.Items[0].NumeroProcesso)
	assert.Equal(t, numero(20), second.Items[9].NumeroProcesso)
	require.NotNil(t, second.NextCursor)
	assert.Equal(t, numero(20), *second.NextCursor)

	// Full last page without anything after it has no next cursor
	third, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
		q.Limit = 10
		q.Cursor = *second.NextCursor
	}))
	require.Nil(t, err)
	require.Len(t, third.Items, 10)
	assert.Equal(t, numero(30), third.Items[9].NumeroProcesso)
	assert.Nil(t, third.NextCursor)
}

func TestListProcessos_DefaultLimit(t *testing.T) {
	svc := newTestService(t, sequentialProcessos(25)...)

	resp, err := svc.ListProcessos(listQuery(nil))
	require.Nil(t, err)
	assert.Len(t, resp.Items, 20)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, numero(20), *resp.NextCursor)
}

func TestListProcessos_FollowingCursorsYieldsEveryItemOnce(t *testing.T) {
	processos := sequentialProcessos(23)
	// Mixed with processos that are never listed
	processos[4].Tramitacoes = nil
	processos[11].Tramitacoes[0].Grau.Sigla = "G2"
	svc := newTestService(t, processos...)

	var expected []string
	for _, p := range processos {
		if len(p.Tramitacoes) > 0 && p.Tramitacoes[0].Grau.Sigla == "G1" {
			expected = append(expected, p.NumeroProcesso)
		}
	}

	var got []string
	cursor := ""
	for pages := 0; pages < 10; pages++ {
		resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
			q.Limit = 4
			q.Grau = "G1"
			q.Cursor = cursor
		}))
		require.Nil(t, err)
		got = append(got, numeros(resp.Items)...)

		if resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	assert.Equal(t, expected, got)
}

func TestListProcessos_StaleCursorRestartsFromBeginning(t *testing.T) {
	svc := newTestService(t, sequentialProcessos(5)...)

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
		q.Limit = 2
		q.Cursor = "9999999-99.9999.9.99.9999"
	}))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(1), numero(2)}, numeros(resp.Items))
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, numero(2), *resp.NextCursor)
}

func TestListProcessos_CursorFilteredOutRestartsFromBeginning(t *testing.T) {
	processos := sequentialProcessos(4)
	processos[1].SiglaTribunal = "TJRJ"
	svc := newTestService(t, processos...)

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
		q.Tribunal = "TJSP"
		q.Cursor = numero(2)
	}))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(1), numero(3), numero(4)}, numeros(resp.Items))
	assert.Nil(t, resp.NextCursor)
}

func TestListProcessos_DropsProcessosWithoutMovimento(t *testing.T) {
	processos := sequentialProcessos(3)
	processos[1].Tramitacoes[0].UltimoMovimento = nil
	svc := newTestService(t, processos...)

	resp, err := svc.ListProcessos(listQuery(nil))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(1), numero(3)}, numeros(resp.Items))
	assert.Nil(t, resp.NextCursor)

	_, apierr := svc.GetProcessoDetail(numero(2))
	requireAPIError(t, apierr, http.StatusNotFound, apierror.CodeProcessoInvalid)
}

func TestListProcessos_ShortPageKeepsCursor(t *testing.T) {
	processos := sequentialProcessos(5)
	processos[1].Tramitacoes[0].UltimoMovimento = nil
	svc := newTestService(t, processos...)

	page := func(cursor string) *contract.ListProcessosResponse {
		resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
			q.Limit = 2
			q.Cursor = cursor
		}))
		require.Nil(t, err)
		return resp
	}

	// The cursor is taken before dropping #2, so the first page is short
	first := page("")
	assert.Equal(t, []string{numero(1)}, numeros(first.Items))
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, numero(2), *first.NextCursor)

	second := page(*first.NextCursor)
	assert.Equal(t, []string{numero(3), numero(4)}, numeros(second.Items))
	require.NotNil(t, second.NextCursor)
	assert.Equal(t, numero(4), *second.NextCursor)

	third := page(*second.NextCursor)
	assert.Equal(t, []string{numero(5)}, numeros(third.Items))
	assert.Nil(t, third.NextCursor)

	var all []string
	for _, resp := range []*contract.ListProcessosResponse{first, second, third} {
		all = append(all, numeros(resp.Items)...)
	}
	assert.Equal(t, []string{numero(1), numero(3), numero(4), numero(5)}, all)
}

func TestListProcessos_FreeTextMatchesEachFieldGroup(t *testing.T) {
	byParte := validProcesso(numero(1))
	byParte.Tramitacoes[0].Partes[0].Nome = "Empresa Alfa Ltda"

	byClasse := validProcesso(numero(2))
	byClasse.Tramitacoes[0].Classe[0].Descricao = "Execução Fiscal Beta"

	byAssunto := validProcesso(numero(3))
	byAssunto.Tramitacoes[0].Assunto[0].Descricao = "Indenização Gama"

	svc := newTestService(t, byParte, byClasse, byAssunto)

	cases := map[string]string{
		"alfa":        numero(1),
		"FISCAL BETA": numero(2),
		"GAMA":        numero(3),
		"0000003-55":  numero(3),
	}
	for term, want := range cases {
		t.Run(term, func(t *testing.T) {
			resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Q = term }))
			require.Nil(t, err)
			assert.Equal(t, []string{want}, numeros(resp.Items))
		})
	}

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Q = "nada disso" }))
	require.Nil(t, err)
	assert.Empty(t, resp.Items)
	assert.NotNil(t, resp.Items)
	assert.Nil(t, resp.NextCursor)
}

func TestListProcessos_FreeTextIgnoresOtherTramitacoes(t *testing.T) {
	p := validProcesso(numero(1))
	old := *p.Tramitacoes[0]
	old.Ativo = false
	old.Partes = []*entity.Parte{{Polo: entity.PoloAtivo, Nome: "Parte Antiga"}}
	p.Tramitacoes = append(p.Tramitacoes, &old)
	svc := newTestService(t, p)

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Q = "antiga" }))
	require.Nil(t, err)
	assert.Empty(t, resp.Items)
}

func TestListProcessos_TribunalAndGrauFilters(t *testing.T) {
	processos := sequentialProcessos(4)
	processos[0].SiglaTribunal = "TJRJ"
	processos[2].Tramitacoes[0].Grau = entity.Grau{Sigla: "G2", Nome: "Segundo Grau", Numero: 2}
	processos[3].SiglaTribunal = "TJRJ"
	processos[3].Tramitacoes[0].Grau = entity.Grau{Sigla: "G2", Nome: "Segundo Grau", Numero: 2}
	svc := newTestService(t, processos...)

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Tribunal = "TJRJ" }))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(1), numero(4)}, numeros(resp.Items))

	// Exact and case sensitive
	resp, err = svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Tribunal = "tjrj" }))
	require.Nil(t, err)
	assert.Empty(t, resp.Items)

	resp, err = svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Grau = "G2" }))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(3), numero(4)}, numeros(resp.Items))

	resp, err = svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) {
		q.Tribunal = "TJRJ"
		q.Grau = "G2"
	}))
	require.Nil(t, err)
	assert.Equal(t, []string{numero(4)}, numeros(resp.Items))
}

func TestListProcessos_GrauFilterUsesCurrentTramitacao(t *testing.T) {
	p := validProcesso(numero(1))
	g2 := *p.Tramitacoes[0]
	g2.Ativo = false
	g2.Grau = entity.Grau{Sigla: "G2", Numero: 2}
	g2.DataHoraUltimaDistribuicao = "2025-01-01T00:00:00Z"
	p.Tramitacoes = append(p.Tramitacoes, &g2)
	svc := newTestService(t, p)

	resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Grau = "G2" }))
	require.Nil(t, err)
	assert.Empty(t, resp.Items)

	resp, err = svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Grau = "G1" }))
	require.Nil(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestListProcessos_LimitBounds(t *testing.T) {
	svc := newTestService(t, sequentialProcessos(3)...)

	for _, limit := range []int{0, -1, 101, 1000} {
		_, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Limit = limit }))
		apierr := requireAPIError(t, err, http.StatusBadRequest, apierror.CodeInvalidParameter)
		assert.Contains(t, apierr.Errors, "limit")
	}

	for _, limit := range []int{1, 100} {
		resp, err := svc.ListProcessos(listQuery(func(q *contract.ListProcessosQuery) { q.Limit = limit }))
		require.Nil(t, err)
		assert.Len(t, resp.Items, min(limit, 3))
	}
}

func TestGetProcessoDetail(t *testing.T) {
	svc := newTestService(t, validProcesso(numero(1)))

	detail, err := svc.GetProcessoDetail(numero(1))
	require.Nil(t, err)
	assert.Equal(t, numero(1), detail.NumeroProcesso)
	assert.Equal(t, "Ativo", detail.TramitacaoAtual)
}

func TestGetProcessoDetail_NotFound(t *testing.T) {
	svc := newTestService(t, validProcesso(numero(1)))

	_, err := svc.GetProcessoDetail("0000000-00.0000.0.00.0000")
	apierr := requireAPIError(t, err, http.StatusNotFound, apierror.CodeProcessoNotFound)
	assert.Contains(t, apierr.Message, "0000000-00.0000.0.00.0000")
}

func TestGetProcessoDetail_NoTramitacoes(t *testing.T) {
	p := validProcesso(numero(1))
	p.Tramitacoes = nil
	svc := newTestService(t, p)

	_, err := svc.GetProcessoDetail(numero(1))
	requireAPIError(t, err, http.StatusNotFound, apierror.CodeProcessoInvalid)
}

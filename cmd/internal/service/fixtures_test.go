package service

import (
	"fmt"
	"processos/cmd/internal/domain/entity"
	"processos/cmd/internal/domain/memory"
	"processos/cmd/internal/utils/validators"
	"testing"

	"github.com/stretchr/testify/require"
)

func numero(i int) string {
	return fmt.Sprintf("%07d-55.2023.8.26.0100", i)
}

func validProcesso(numeroProcesso string) *entity.Processo {
	codigo := 51
	return &entity.Processo{
		NumeroProcesso:  numeroProcesso,
		NivelSigilo:     0,
		IDCodexTribunal: 26,
		SiglaTribunal:   "TJSP",
		Tramitacoes: []*entity.Tramitacao{
			{
				IDCodex:                    100,
				Ativo:                      true,
				DataHoraAjuizamento:        "2023-01-10T10:00:00Z",
				DataHoraUltimaDistribuicao: "2023-01-11T10:00:00Z",
				Grau:                       entity.Grau{Sigla: "G1", Nome: "Primeiro Grau", Numero: 1},
				Tribunal:                   entity.Tribunal{Sigla: "TJSP", Nome: "Tribunal de Justiça de São Paulo", Segmento: "JUS"},
				Classe:                     []entity.Classe{{Codigo: 7, Descricao: "Procedimento Comum"}},
				Assunto:                    []entity.Assunto{{Codigo: 10439, Descricao: "Dano Material", Hierarquia: "899.10431.10439"}},
				Partes: []*entity.Parte{
					{
						Polo:      entity.PoloAtivo,
						TipoParte: "Autor",
						Nome:      "Maria da Silva",
						Representantes: []entity.Representante{
							{TipoRepresentacao: "Advogado", Nome: "João Souza", Situacao: "Ativo"},
						},
					},
					{Polo: entity.PoloPassivo, TipoParte: "Réu", Nome: "Banco Exemplo S.A."},
				},
				UltimoMovimento: &entity.UltimoMovimento{
					Sequencia: 12,
					DataHora:  "2024-03-01T12:00:00Z",
					Descricao: "Conclusos para <b>despacho</b>",
					Codigo:    &codigo,
					OrgaoJulgador: []entity.OrgaoJulgador{
						{ID: 1, Nome: "1ª Vara Cível"},
					},
				},
			},
		},
	}
}

func newTestService(t *testing.T, processos ...*entity.Processo) *DefaultProcessoService {
	t.Helper()

	store, err := memory.NewProcessoStore(processos)
	require.NoError(t, err)
	return NewProcessoService(store, validators.New())
}

func sequentialProcessos(n int) []*entity.Processo {
	processos := make([]*entity.Processo, n)
	for i := range processos {
		processos[i] = validProcesso(numero(i + 1))
	}
	return processos
}

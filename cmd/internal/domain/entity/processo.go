package entity

// Polo is the side of the case a party is on.
type Polo string

const (
	PoloAtivo   Polo = "ATIVO"
	PoloPassivo Polo = "PASSIVO"
)

// StatusTramitacao is the human readable status of a tramitação,
// derived from its `ativo` flag.
type StatusTramitacao string

const (
	StatusAtivo   StatusTramitacao = "Ativo"
	StatusInativo StatusTramitacao = "Inativo"
)

func StatusFromAtivo(ativo bool) StatusTramitacao {
	if ativo {
		return StatusAtivo
	}
	return StatusInativo
}

// ProcessosData is the root of the snapshot document.
type ProcessosData struct {
	Content []*Processo `json:"content" validate:"required,dive,required"`
}

type Processo struct {
	NumeroProcesso  string        `json:"numeroProcesso" validate:"required,nospaces"`
	NivelSigilo     int           `json:"nivelSigilo"`
	IDCodexTribunal int           `json:"idCodexTribunal"`
	SiglaTribunal   string        `json:"siglaTribunal"`
	Tramitacoes     []*Tramitacao `json:"tramitacoes" validate:"dive,required"`
}

// Tramitacao is one proceeding stage of a process. A process can be processed
// on many instances, each one being a different tramitação.
type Tramitacao struct {
	IDCodex                    int64            `json:"idCodex"`
	DataHoraAjuizamento        string           `json:"dataHoraAjuizamento"`
	Tribunal                   Tribunal         `json:"tribunal"`
	Grau                       Grau             `json:"grau"`
	Liminar                    bool             `json:"liminar"`
	NivelSigilo                int              `json:"nivelSigilo"`
	ValorAcao                  float64          `json:"valorAcao"`
	DataHoraUltimaDistribuicao string           `json:"dataHoraUltimaDistribuicao"`
	Classe                     []Classe         `json:"classe"`
	Assunto                    []Assunto        `json:"assunto"`
	UltimoMovimento            *UltimoMovimento `json:"ultimoMovimento"`
	Partes                     []*Parte         `json:"partes" validate:"dive,required"`
	Ativo                      bool             `json:"ativo"`
}

type Tribunal struct {
	Sigla    string `json:"sigla"`
	Nome     string `json:"nome"`
	Segmento string `json:"segmento"`
	JTR      string `json:"jtr"`
}

// Grau is the instance of a tramitação. Numero is 1 for the first instance,
// 2 for the second one and so on; higher means superior.
type Grau struct {
	Sigla  string `json:"sigla"`
	Nome   string `json:"nome"`
	Numero int    `json:"numero"`
}

type Classe struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

type Assunto struct {
	Codigo     int    `json:"codigo"`
	Descricao  string `json:"descricao"`
	Hierarquia string `json:"hierarquia"`
}

type OrgaoJulgador struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// UltimoMovimento is the last movement of a tramitação. Descricao may carry
// markup and is never interpreted.
type UltimoMovimento struct {
	Sequencia           int             `json:"sequencia"`
	DataHora            string          `json:"dataHora"`
	Codigo              *int            `json:"codigo"`
	Descricao           string          `json:"descricao"`
	IDCodex             int64           `json:"idCodex"`
	IDMovimentoOrigem   string          `json:"idMovimentoOrigem"`
	IDDistribuicaoCodex int64           `json:"idDistribuicaoCodex"`
	Classe              *Classe         `json:"classe"`
	OrgaoJulgador       []OrgaoJulgador `json:"orgaoJulgador"`
}

type Parte struct {
	Polo           Polo            `json:"polo" validate:"oneof=ATIVO PASSIVO"`
	TipoParte      string          `json:"tipoParte"`
	Nome           string          `json:"nome"`
	TipoPessoa     string          `json:"tipoPessoa"`
	Sigilosa       bool            `json:"sigilosa"`
	Representantes []Representante `json:"representantes"`
}

type Representante struct {
	TipoRepresentacao string `json:"tipoRepresentacao"`
	Nome              string `json:"nome"`
	Situacao          string `json:"situacao"`
}

// OrgaoJulgadorNomes returns the names of the adjudicating bodies, in order.
func (m *UltimoMovimento) OrgaoJulgadorNomes() []string {
	nomes := make([]string, len(m.OrgaoJulgador))
	for i, o := range m.OrgaoJulgador {
		nomes[i] = o.Nome
	}
	return nomes
}

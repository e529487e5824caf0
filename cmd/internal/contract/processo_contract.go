package contract

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// MaxRepresentantesPerParte caps the representatives listed per party in the detail view.
	MaxRepresentantesPerParte = 5
)

type ListProcessosQuery struct {
	Q        string `query:"q"`
	Tribunal string `query:"tribunal"`
	Grau     string `query:"grau"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
	Cursor   string `query:"cursor"`
}

type ListProcessosResponse struct {
	Items      []*ProcessoSummary `json:"items"`
	NextCursor *string            `json:"nextCursor"`
}

type ProcessoSummary struct {
	NumeroProcesso   string                 `json:"numeroProcesso"`
	SiglaTribunal    string                 `json:"siglaTribunal"`
	GrauAtual        string                 `json:"grauAtual"`
	ClassePrincipal  string                 `json:"classePrincipal"`
	AssuntoPrincipal string                 `json:"assuntoPrincipal"`
	UltimoMovimento  *UltimoMovimentoResumo `json:"ultimoMovimento"`
	PartesResumo     *PartesResumo          `json:"partesResumo"`
}

type UltimoMovimentoResumo struct {
	DataHora      string `json:"dataHora"`
	Descricao     string `json:"descricao"`
	OrgaoJulgador string `json:"orgaoJulgador"`
	Codigo        *int   `json:"codigo,omitempty"`
}

type PartesResumo struct {
	Ativo   []string `json:"ativo"`
	Passivo []string `json:"passivo"`
}

type ProcessoDetail struct {
	NumeroProcesso  string                  `json:"numeroProcesso"`
	SiglaTribunal   string                  `json:"siglaTribunal"`
	NivelSigilo     int                     `json:"nivelSigilo"`
	TramitacaoAtual string                  `json:"tramitacaoAtual"`
	Grau            *GrauResponse           `json:"grau"`
	OrgaoJulgador   string                  `json:"orgaoJulgador"`
	Classes         []*ClasseResponse       `json:"classes"`
	Assuntos        []*AssuntoResponse      `json:"assuntos"`
	DatasRelevantes *DatasRelevantes        `json:"datasRelevantes"`
	Partes          []*ParteResponse        `json:"partes"`
	UltimoMovimento *UltimoMovimentoDetalhe `json:"ultimoMovimento"`
}

type GrauResponse struct {
	Sigla  string `json:"sigla"`
	Nome   string `json:"nome"`
	Numero int    `json:"numero"`
}

type ClasseResponse struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

type AssuntoResponse struct {
	Codigo     int    `json:"codigo"`
	Descricao  string `json:"descricao"`
	Hierarquia string `json:"hierarquia"`
}

type DatasRelevantes struct {
	Ajuizamento        string `json:"ajuizamento"`
	UltimaDistribuicao string `json:"ultimaDistribuicao"`
}

type ParteResponse struct {
	Nome           string                   `json:"nome"`
	TipoParte      string                   `json:"tipoParte"`
	Polo           string                   `json:"polo"`
	Representantes []*RepresentanteResponse `json:"representantes"`
}

type RepresentanteResponse struct {
	TipoRepresentacao string `json:"tipoRepresentacao"`
	Nome              string `json:"nome"`
	Situacao          string `json:"situacao"`
}

type UltimoMovimentoDetalhe struct {
	Data          string   `json:"data"`
	Descricao     string   `json:"descricao"`
	OrgaoJulgador []string `json:"orgaoJulgador"`
	Codigo        *int     `json:"codigo,omitempty"`
}

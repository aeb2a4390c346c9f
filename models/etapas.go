package models

// Status possíveis de um processo.
const (
	StatusFaseInterna         = "FASE_INTERNA"
	StatusPublicado           = "PUBLICADO"
	StatusAguardandoPropostas = "AGUARDANDO_PROPOSTAS"
	StatusEmAnalise           = "EM_ANALISE"
	StatusHomologado          = "HOMOLOGADO"
	StatusCancelado           = "CANCELADO"
)

var StatusLabels = map[string]string{
	StatusFaseInterna:         "Fase Interna",
	StatusPublicado:           "Publicado",
	StatusAguardandoPropostas: "Aguardando Propostas",
	StatusEmAnalise:           "Em Análise",
	StatusHomologado:          "Homologado",
	StatusCancelado:           "Cancelado",
}

var ModalidadeLabels = map[string]string{
	"PREGAO":              "Pregão",
	"CONCORRENCIA":        "Concorrência",
	"CONCURSO":            "Concurso",
	"LEILAO":              "Leilão",
	"DIALOGO_COMPETITIVO": "Diálogo Competitivo",
	"DISPENSA":            "Dispensa de Licitação",
	"INEXIGIBILIDADE":     "Inexigibilidade de Licitação",
}

var CriterioJulgamentoLabels = map[string]string{
	"MENOR_PRECO":    "Menor Preço",
	"MAIOR_DESCONTO": "Maior Desconto",
	"MELHOR_TECNICA": "Melhor Técnica ou Conteúdo Artístico",
	"TECNICA_PRECO":  "Técnica e Preço",
	"MAIOR_RETORNO":  "Maior Retorno Econômico",
}

// Etapas que alteram o status do processo ao serem concluídas pela
// primeira vez. Nenhuma outra etapa tem efeito sobre o status.
const (
	EtapaPublicacaoAviso = "PUBLICACAO_AVISO"
	EtapaHomologacao     = "HOMOLOGACAO"
)

// Etapa do checklist legal de um processo licitatório.
type Etapa struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FaseInternaLen separa o catálogo nas duas fases exibidas: etapas
// [0,12) pertencem à fase interna, o restante à fase externa. A divisão
// é apenas de apresentação, não impõe ordem de conclusão.
const FaseInternaLen = 12

// Etapas é o catálogo fixo e ordenado de etapas pelas quais um processo
// pode passar (Lei 14.133/2021). Não é extensível pelo usuário.
var Etapas = []Etapa{
	// fase interna
	{"DFD", "Documento de formalização da demanda"},
	{"ETP", "Estudo Técnico Preliminar (ETP)"},
	{"PESQUISA_PRECOS", "Pesquisa de preços do mercado"},
	{"DOTACAO", "Dotação orçamentária"},
	{"MAPA_RISCOS", "Mapa de riscos, quando exigido"},
	{"TERMO_REF", "Termo de referência ou projeto básico"},
	{"JUSTIFICATIVA", "Justificativa"},
	{"PARECER_TECNICO_JURIDICO", "Parecer da área técnica e/ou jurídica"},
	{"PARECER_CONTROLE_INTERNO", "Parecer Controle Interno"},
	{"PEDIDO_RATIFICACAO", "Pedido de Ratificação"},
	{"RATIFICACAO", "Ratificação"},
	{"AUTORIZACAO", "Autorização da autoridade competente para o início"},
	// fase externa
	{"EDITAL", "Edital de licitação, incluindo anexos"},
	{EtapaPublicacaoAviso, "Publicação do aviso de licitação"},
	{"RECEBIMENTO_PROPOSTAS", "Recebimento das propostas e documentos de habilitação"},
	{"ATA_SESSAO", "Ata/súmula de sessão pública"},
	{"PLANILHA_CLASSIFICACAO", "Planilha de classificação das propostas"},
	{"DOCS_HABILITACAO", "Documentos apresentados para habilitação"},
	{"PARECERES_FASE_EXTERNA", "Pareceres técnicos e jurídicos sobre propostas/habilitação"},
	{"RECURSOS", "Registros de recursos administrativos"},
	{"JULGAMENTO_RECURSOS", "Ata(s) de julgamento dos recursos"},
	{"ADJUDICACAO", "Adjudicação do objeto ao licitante vencedor"},
	{EtapaHomologacao, "Homologação final do resultado"},
}

// EtapaLabel devolve o rótulo de exibição de uma etapa ("" se desconhecida).
func EtapaLabel(key string) string {
	for _, e := range Etapas {
		if e.Key == key {
			return e.Label
		}
	}
	return ""
}

// EtapaValida informa se a chave pertence ao catálogo.
func EtapaValida(key string) bool {
	return EtapaLabel(key) != ""
}

func StatusValido(s string) bool {
	_, ok := StatusLabels[s]
	return ok
}

func ModalidadeValida(m string) bool {
	_, ok := ModalidadeLabels[m]
	return ok
}

func CriterioJulgamentoValido(c string) bool {
	_, ok := CriterioJulgamentoLabels[c]
	return ok
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Órgão público (prefeitura, autarquia, etc).
type Orgao struct {
	ID        int       `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome" validate:"required,max=200"`
	CNPJ      string    `db:"cnpj" json:"cnpj" validate:"required,max=18"`
	Endereco  string    `db:"endereco" json:"endereco" validate:"required,max=255"`
	Telefone  string    `db:"telefone" json:"telefone"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Secretaria pertence a um órgão; (orgao, nome) é único.
type Secretaria struct {
	ID        int       `db:"id" json:"id"`
	OrgaoID   int       `db:"orgao_id" json:"orgaoId" validate:"required"`
	Nome      string    `db:"nome" json:"nome" validate:"required,max=200"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Servidor responsável por demandas e aprovações.
type Responsavel struct {
	ID           int       `db:"id" json:"id"`
	Nome         string    `db:"nome" json:"nome" validate:"required,max=200"`
	Matricula    string    `db:"matricula" json:"matricula" validate:"required,max=50"`
	Cargo        string    `db:"cargo" json:"cargo" validate:"required,max=100"`
	SecretariaID *int      `db:"secretaria_id" json:"secretariaId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

type Fornecedor struct {
	ID           int       `db:"id" json:"id"`
	RazaoSocial  string    `db:"razao_social" json:"razaoSocial" validate:"required,max=200"`
	NomeFantasia string    `db:"nome_fantasia" json:"nomeFantasia"`
	CNPJ         string    `db:"cnpj" json:"cnpj" validate:"required,max=18"`
	Telefone     string    `db:"telefone" json:"telefone"`
	Email        string    `db:"email" json:"email" validate:"required,email"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// Processo licitatório. Campos etp_* formam a narrativa do Estudo
// Técnico Preliminar; quando vazios, o gerador de documentos aplica o
// texto padrão de cada seção.
type Processo struct {
	ID                   int                 `db:"id" json:"id"`
	NumeroProcesso       string              `db:"numero_processo" json:"numeroProcesso" validate:"required,max=50"`
	OrgaoID              int                 `db:"orgao_id" json:"orgaoId" validate:"required"`
	SecretariaID         *int                `db:"secretaria_id" json:"secretariaId"`
	ResponsavelDemandaID *int                `db:"responsavel_demanda_id" json:"responsavelDemandaId"`
	Objeto               string              `db:"objeto" json:"objeto" validate:"required"`
	Status               string              `db:"status" json:"status" validate:"required,oneof=FASE_INTERNA PUBLICADO AGUARDANDO_PROPOSTAS EM_ANALISE HOMOLOGADO CANCELADO"`
	Modalidade           string              `db:"modalidade" json:"modalidade" validate:"required,oneof=PREGAO CONCORRENCIA CONCURSO LEILAO DIALOGO_COMPETITIVO DISPENSA INEXIGIBILIDADE"`
	DataAbertura         time.Time           `db:"data_abertura" json:"dataAbertura"`
	ValorEstimado        decimal.NullDecimal `db:"valor_estimado" json:"valorEstimado"`
	Justificativa        string              `db:"justificativa" json:"justificativa"`
	DescricaoDetalhada   string              `db:"descricao_detalhada_objeto" json:"descricaoDetalhadaObjeto"`
	VigenciaMeses        *int                `db:"vigencia_meses" json:"vigenciaMeses"`

	// ETP
	EtpResponsavelElaboracaoID   *int   `db:"etp_responsavel_elaboracao_id" json:"etpResponsavelElaboracaoId"`
	EtpAutoridadeCompetenteID    *int   `db:"etp_autoridade_competente_id" json:"etpAutoridadeCompetenteId"`
	EtpPcaTexto                  string `db:"etp_pca_texto" json:"etpPcaTexto"`
	EtpEstimativaQuantidades     string `db:"etp_texto_estimativa_quantidades" json:"etpTextoEstimativaQuantidades"`
	EtpLevantamentoMercado       string `db:"etp_texto_levantamento_mercado" json:"etpTextoLevantamentoMercado"`
	EtpEstimativaMetodologia     string `db:"etp_estimativa_metodologia" json:"etpEstimativaMetodologia"`
	EtpAnaliseFornecedores       string `db:"etp_analise_fornecedores_detalhe" json:"etpAnaliseFornecedoresDetalhe"`
	EtpRequisitosGeral           string `db:"etp_requisitos_texto_geral" json:"etpRequisitosTextoGeral"`
	EtpRequisitosMarcas          string `db:"etp_requisitos_marcas_texto" json:"etpRequisitosMarcasTexto"`
	EtpRequisitosAmostra         string `db:"etp_requisitos_amostra_texto" json:"etpRequisitosAmostraTexto"`
	EtpRequisitosTecnicos        string `db:"etp_requisitos_tecnicos_detalhe" json:"etpRequisitosTecnicosDetalhe"`
	EtpRequisitosCapacitacao     string `db:"etp_requisitos_capacitacao_detalhe" json:"etpRequisitosCapacitacaoDetalhe"`
	EtpJustificativaContratacao  string `db:"etp_justificativa_contratacao" json:"etpJustificativaContratacao"`
	EtpDescricaoSolucao          string `db:"etp_descricao_solucao_texto" json:"etpDescricaoSolucaoTexto"`
	EtpSolucaoProposta           string `db:"etp_solucao_proposta_detalhe" json:"etpSolucaoPropostaDetalhe"`
	EtpAnaliseAlternativas       string `db:"etp_analise_alternativas_detalhe" json:"etpAnaliseAlternativasDetalhe"`
	EtpJustificativaParcelamento string `db:"etp_justificativa_parcelamento_texto" json:"etpJustificativaParcelamentoTexto"`
	EtpResultadosPretendidos     string `db:"etp_resultados_pretendidos_texto" json:"etpResultadosPretendidosTexto"`
	EtpProvidencias              string `db:"etp_providencias_texto" json:"etpProvidenciasTexto"`
	EtpContratacoesCorrelatas    string `db:"etp_contratacoes_correlatas_texto" json:"etpContratacoesCorrelatasTexto"`
	EtpAlinhamentoEstrategico    string `db:"etp_alinhamento_estrategico_texto" json:"etpAlinhamentoEstrategicoTexto"`
	EtpImpactosAmbientais        string `db:"etp_impactos_ambientais_texto" json:"etpImpactosAmbientaisTexto"`
	EtpGestorContrato            string `db:"etp_gestor_contrato" json:"etpGestorContrato"`
	EtpFiscalTecnico             string `db:"etp_fiscal_tecnico" json:"etpFiscalTecnico"`
	EtpFiscalAdministrativo      string `db:"etp_fiscal_administrativo" json:"etpFiscalAdministrativo"`
	EtpPrazoExecucao             *int   `db:"etp_prazo_execucao" json:"etpPrazoExecucao"`
	EtpJustificativaPrazo        string `db:"etp_justificativa_prazo" json:"etpJustificativaPrazo"`
	EtpCriterioJulgamento        string `db:"etp_criterio_julgamento" json:"etpCriterioJulgamento"`
	EtpJustificativaModalidade   string `db:"etp_justificativa_modalidade_criterio" json:"etpJustificativaModalidadeCriterio"`
	EtpDotacaoProgramaTrabalho   string `db:"etp_dotacao_programa_trabalho" json:"etpDotacaoProgramaTrabalho"`
	EtpDotacaoNaturezaDespesa    string `db:"etp_dotacao_natureza_despesa" json:"etpDotacaoNaturezaDespesa"`
	EtpDotacaoFonteRecursos      string `db:"etp_dotacao_fonte_recursos" json:"etpDotacaoFonteRecursos"`
	EtpListaAnexos               string `db:"etp_lista_anexos_texto" json:"etpListaAnexosTexto"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Etapa concluída de um processo; (processo, etapa) é único.
type HistoricoProcesso struct {
	ID            int       `db:"id" json:"id"`
	ProcessoID    int       `db:"processo_id" json:"processoId"`
	Etapa         string    `db:"etapa" json:"etapa"`
	DataConclusao time.Time `db:"data_conclusao" json:"dataConclusao"`
}

// Documento gerado a partir de um processo (arquivo .docx em disco).
type Documento struct {
	ID          int       `db:"id" json:"id"`
	ProcessoID  int       `db:"processo_id" json:"processoId"`
	Tipo        string    `db:"tipo" json:"tipo" validate:"required,oneof=DFD ETP TR"`
	Arquivo     string    `db:"arquivo" json:"arquivo"`
	DataGeracao time.Time `db:"data_geracao" json:"dataGeracao"`
	GeradoPor   string    `db:"gerado_por" json:"geradoPor"`
}

// Usuário do sistema (autenticação por senha).
type Usuario struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username" validate:"required,max=100"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

package docgen

import (
	"fmt"
	"strings"
	"time"

	"licitacoes/models"
)

// Contexto reúne o processo e as entidades relacionadas necessárias
// para montar um documento.
type Contexto struct {
	Processo           *models.Processo
	Orgao              *models.Orgao
	Secretaria         *models.Secretaria  // opcional
	ResponsavelDemanda *models.Responsavel // opcional
	Elaborador         *models.Responsavel // opcional
	Agora              time.Time
	GeradoPor          string
}

// Secao liga um título fixo ao conteúdo extraído do processo. Conteúdo
// vazio suprime a seção inteira (inclusive o título).
type Secao struct {
	Titulo   string
	Conteudo func(*Contexto) []string
}

type template struct {
	titulo     string
	subtitulo  string
	cabecalho  func(*Contexto) [][2]string
	secoes     []Secao
	assinatura func(*Contexto) []string
}

// validate confere a tabela de seções na inicialização: títulos únicos
// e não vazios, acessores declarados.
func (t template) validate() error {
	if t.titulo == "" {
		return fmt.Errorf("documento sem título")
	}
	if t.cabecalho == nil || t.assinatura == nil {
		return fmt.Errorf("cabeçalho ou assinatura ausente")
	}
	vistos := make(map[string]bool, len(t.secoes))
	for i, s := range t.secoes {
		if s.Titulo == "" {
			return fmt.Errorf("seção %d sem título", i)
		}
		if s.Conteudo == nil {
			return fmt.Errorf("seção %q sem acessor de conteúdo", s.Titulo)
		}
		if vistos[s.Titulo] {
			return fmt.Errorf("título de seção duplicado: %q", s.Titulo)
		}
		vistos[s.Titulo] = true
	}
	return nil
}

// paragrafos quebra um texto longo nos parágrafos do documento.
func paragrafos(texto string) []string {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil
	}
	return strings.Split(texto, "\n")
}

// campo devolve o valor do campo quando preenchido, senão o texto
// padrão da seção.
func campo(get func(*models.Processo) string, padrao string) func(*Contexto) []string {
	return func(ctx *Contexto) []string {
		if v := strings.TrimSpace(get(ctx.Processo)); v != "" {
			return paragrafos(v)
		}
		return paragrafos(padrao)
	}
}

// campoOpcional devolve o valor quando preenchido e suprime a seção
// quando vazio.
func campoOpcional(get func(*models.Processo) string) func(*Contexto) []string {
	return func(ctx *Contexto) []string {
		return paragrafos(get(ctx.Processo))
	}
}

func dfdTemplate() template {
	return template{
		titulo: "DOCUMENTO DE FORMALIZAÇÃO DA DEMANDA (DFD)",
		cabecalho: func(ctx *Contexto) [][2]string {
			linhas := [][2]string{{"Órgão", ctx.Orgao.Nome}}
			if ctx.Secretaria != nil {
				linhas = append(linhas, [2]string{"Unidade Requisitante", ctx.Secretaria.Nome})
			}
			linhas = append(linhas,
				[2]string{"Processo nº", ctx.Processo.NumeroProcesso},
				[2]string{"Data", ctx.Agora.Format("02/01/2006")},
			)
			return linhas
		},
		secoes: []Secao{
			{"1. DESCRIÇÃO DA NECESSIDADE", campo(func(p *models.Processo) string { return p.Justificativa }, padraoASerPreenchido)},
			{"2. OBJETO DA CONTRATAÇÃO", func(ctx *Contexto) []string {
				if v := strings.TrimSpace(ctx.Processo.DescricaoDetalhada); v != "" {
					return paragrafos(v)
				}
				return paragrafos(ctx.Processo.Objeto)
			}},
			{"3. MODALIDADE SUGERIDA", func(ctx *Contexto) []string {
				return []string{models.ModalidadeLabels[ctx.Processo.Modalidade]}
			}},
			{"4. VALOR ESTIMADO", func(ctx *Contexto) []string {
				if !ctx.Processo.ValorEstimado.Valid {
					return []string{padraoValorEstimadoDFD}
				}
				return []string{FormatBRL(ctx.Processo.ValorEstimado)}
			}},
			{"5. JUSTIFICATIVA DA CONTRATAÇÃO", campo(func(p *models.Processo) string { return p.EtpJustificativaContratacao }, padraoJustificativaContratacao)},
			{"6. RESPONSÁVEL PELA DEMANDA", func(ctx *Contexto) []string {
				r := ctx.ResponsavelDemanda
				if r == nil {
					return []string{padraoResponsavelDemanda}
				}
				return []string{
					"Nome: " + r.Nome,
					"Cargo: " + r.Cargo,
					"Matrícula: " + r.Matricula,
				}
			}},
		},
		assinatura: func(*Contexto) []string {
			return []string{"Assinatura do Responsável"}
		},
	}
}

func etpTemplate() template {
	return template{
		titulo:    "ESTUDO TÉCNICO PRELIMINAR (ETP)",
		subtitulo: "Conforme Art. 18, §1º da Lei 14.133/2021",
		cabecalho: func(ctx *Contexto) [][2]string {
			return [][2]string{
				{"Órgão", ctx.Orgao.Nome},
				{"Processo nº", ctx.Processo.NumeroProcesso},
				{"Data", ctx.Agora.Format("02/01/2006")},
			}
		},
		secoes: []Secao{
			{"1. DESCRIÇÃO DA NECESSIDADE", campo(func(p *models.Processo) string { return p.Justificativa }, padraoASerPreenchido)},
			{"2. PREVISÃO NO PLANO DE CONTRATAÇÕES ANUAL (PCA)", campo(func(p *models.Processo) string { return p.EtpPcaTexto }, padraoPca)},
			{"3. DESCRIÇÃO DOS REQUISITOS DA CONTRATAÇÃO", func(ctx *Contexto) []string {
				if v := strings.TrimSpace(ctx.Processo.DescricaoDetalhada); v != "" {
					return paragrafos(v)
				}
				return paragrafos(ctx.Processo.Objeto)
			}},
			{"3.2. REQUISITOS TÉCNICOS", campoOpcional(func(p *models.Processo) string { return p.EtpRequisitosTecnicos })},
			{"4. LEVANTAMENTO DE MERCADO", campo(func(p *models.Processo) string { return p.EtpLevantamentoMercado }, padraoLevantamentoMercado)},
			{"5. ESTIMATIVA DAS QUANTIDADES", campo(func(p *models.Processo) string { return p.EtpEstimativaQuantidades }, padraoEstimativaQuantidades)},
			{"6. ESTIMATIVA DE PREÇOS", func(ctx *Contexto) []string {
				var linhas []string
				if ctx.Processo.ValorEstimado.Valid {
					linhas = append(linhas, "Valor Estimado Total: "+FormatBRL(ctx.Processo.ValorEstimado))
				}
				if m := strings.TrimSpace(ctx.Processo.EtpEstimativaMetodologia); m != "" {
					linhas = append(linhas, "Metodologia: "+m)
				}
				if len(linhas) == 0 {
					linhas = []string{padraoValorEstimadoDFD}
				}
				return linhas
			}},
			{"7. DESCRIÇÃO DA SOLUÇÃO COMO UM TODO", campo(func(p *models.Processo) string { return p.EtpDescricaoSolucao }, padraoDescricaoSolucao)},
			{"8. JUSTIFICATIVA PARA PARCELAMENTO OU NÃO DA SOLUÇÃO", campo(func(p *models.Processo) string { return p.EtpJustificativaParcelamento }, padraoJustificativaParcelamento)},
			{"9. CONTRATAÇÕES CORRELATAS E/OU INTERDEPENDENTES", campo(func(p *models.Processo) string { return p.EtpContratacoesCorrelatas }, padraoContratacoesCorrelatas)},
			{"10. ALINHAMENTO AO PLANEJAMENTO", campo(func(p *models.Processo) string { return p.EtpAlinhamentoEstrategico }, padraoAlinhamentoEstrategico)},
			{"11. DEMONSTRATIVO DOS RESULTADOS PRETENDIDOS", campo(func(p *models.Processo) string { return p.EtpResultadosPretendidos }, padraoResultadosPretendidos)},
			{"12. PROVIDÊNCIAS A SEREM ADOTADAS", campo(func(p *models.Processo) string { return p.EtpProvidencias }, padraoProvidencias)},
			{"13. POSSÍVEIS IMPACTOS AMBIENTAIS", campo(func(p *models.Processo) string { return p.EtpImpactosAmbientais }, padraoImpactosAmbientais)},
			{"14. MODALIDADE E CRITÉRIO DE JULGAMENTO", func(ctx *Contexto) []string {
				linhas := []string{"Modalidade: " + models.ModalidadeLabels[ctx.Processo.Modalidade]}
				if c := ctx.Processo.EtpCriterioJulgamento; c != "" {
					linhas = append(linhas, "Critério de Julgamento: "+models.CriterioJulgamentoLabels[c])
				}
				if j := strings.TrimSpace(ctx.Processo.EtpJustificativaModalidade); j != "" {
					linhas = append(linhas, "Justificativa: "+j)
				}
				return linhas
			}},
			{"15. PRAZO DE EXECUÇÃO E VIGÊNCIA CONTRATUAL", func(ctx *Contexto) []string {
				var linhas []string
				if ctx.Processo.VigenciaMeses != nil {
					linhas = append(linhas, fmt.Sprintf("Vigência: %d meses", *ctx.Processo.VigenciaMeses))
				}
				if j := strings.TrimSpace(ctx.Processo.EtpJustificativaPrazo); j != "" {
					linhas = append(linhas, "Justificativa: "+j)
				}
				return linhas
			}},
			{"16. DOTAÇÃO ORÇAMENTÁRIA", secaoDotacao},
		},
		assinatura: func(ctx *Contexto) []string {
			if ctx.Elaborador != nil {
				return []string{ctx.Elaborador.Nome, ctx.Elaborador.Cargo}
			}
			return []string{"Responsável pela Elaboração"}
		},
	}
}

func trTemplate() template {
	return template{
		titulo: "TERMO DE REFERÊNCIA",
		cabecalho: func(ctx *Contexto) [][2]string {
			return [][2]string{
				{"Órgão", ctx.Orgao.Nome},
				{"Processo nº", ctx.Processo.NumeroProcesso},
				{"Data", ctx.Agora.Format("02/01/2006")},
			}
		},
		secoes: []Secao{
			{"1. DO OBJETO", func(ctx *Contexto) []string {
				if v := strings.TrimSpace(ctx.Processo.DescricaoDetalhada); v != "" {
					return paragrafos(v)
				}
				return paragrafos(ctx.Processo.Objeto)
			}},
			{"2. DA JUSTIFICATIVA", func(ctx *Contexto) []string {
				if v := strings.TrimSpace(ctx.Processo.EtpJustificativaContratacao); v != "" {
					return paragrafos(v)
				}
				return paragrafos(ctx.Processo.Justificativa)
			}},
			{"3. DAS ESPECIFICAÇÕES TÉCNICAS", campo(func(p *models.Processo) string { return p.EtpRequisitosTecnicos }, padraoEspecificacoesTecnicas)},
			{"4. DOS QUANTITATIVOS", campo(func(p *models.Processo) string { return p.EtpEstimativaQuantidades }, padraoEstimativaQuantidades)},
			{"5. DO VALOR ESTIMADO", func(ctx *Contexto) []string {
				if !ctx.Processo.ValorEstimado.Valid {
					return nil
				}
				return []string{"O valor estimado para esta contratação é de " + FormatBRL(ctx.Processo.ValorEstimado)}
			}},
			{"6. DO PRAZO E LOCAL DE ENTREGA", func(*Contexto) []string {
				return []string{"Os produtos/serviços deverão ser entregues conforme cronograma estabelecido no edital."}
			}},
			{"7. DAS CONDIÇÕES DE PAGAMENTO", func(*Contexto) []string {
				return []string{"O pagamento será efetuado em até 30 (trinta) dias após a entrega e aceitação dos produtos/serviços."}
			}},
			{"8. DAS OBRIGAÇÕES DA CONTRATADA", func(*Contexto) []string {
				return []string{
					"A contratada deverá:",
					"a) Fornecer os produtos/serviços conforme especificações;",
					"b) Responsabilizar-se por todos os encargos;",
					"c) Manter durante toda a execução as condições de habilitação.",
				}
			}},
			{"9. DAS OBRIGAÇÕES DA CONTRATANTE", func(*Contexto) []string {
				return []string{
					"A contratante deverá:",
					"a) Efetuar o pagamento nas condições estabelecidas;",
					"b) Fiscalizar a execução do contrato;",
					"c) Notificar a contratada sobre irregularidades.",
				}
			}},
			{"10. DA FISCALIZAÇÃO", func(ctx *Contexto) []string {
				var linhas []string
				if v := ctx.Processo.EtpFiscalTecnico; v != "" {
					linhas = append(linhas, "Fiscal Técnico: "+v)
				}
				if v := ctx.Processo.EtpFiscalAdministrativo; v != "" {
					linhas = append(linhas, "Fiscal Administrativo: "+v)
				}
				if v := ctx.Processo.EtpGestorContrato; v != "" {
					linhas = append(linhas, "Gestor do Contrato: "+v)
				}
				return linhas
			}},
			{"11. DA VIGÊNCIA", func(ctx *Contexto) []string {
				if ctx.Processo.VigenciaMeses == nil {
					return nil
				}
				return []string{fmt.Sprintf("O contrato terá vigência de %d meses, contados da data de sua assinatura.", *ctx.Processo.VigenciaMeses)}
			}},
			{"12. DA DOTAÇÃO ORÇAMENTÁRIA", secaoDotacao},
		},
		assinatura: func(*Contexto) []string {
			return []string{"Responsável Técnico"}
		},
	}
}

// secaoDotacao é compartilhada entre ETP e TR.
func secaoDotacao(ctx *Contexto) []string {
	var linhas []string
	if v := ctx.Processo.EtpDotacaoProgramaTrabalho; v != "" {
		linhas = append(linhas, "Programa de Trabalho: "+v)
	}
	if v := ctx.Processo.EtpDotacaoNaturezaDespesa; v != "" {
		linhas = append(linhas, "Natureza da Despesa: "+v)
	}
	if v := ctx.Processo.EtpDotacaoFonteRecursos; v != "" {
		linhas = append(linhas, "Fonte de Recursos: "+v)
	}
	return linhas
}

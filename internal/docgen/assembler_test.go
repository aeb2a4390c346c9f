package docgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"licitacoes/models"
)

func contextoTeste() *Contexto {
	return &Contexto{
		Processo: &models.Processo{
			ID:             1,
			NumeroProcesso: "001/2026",
			OrgaoID:        1,
			Objeto:         "Aquisição de computadores",
			Status:         models.StatusFaseInterna,
			Modalidade:     "PREGAO",
			ValorEstimado:  decimal.NewNullDecimal(decimal.NewFromFloat(15000)),
		},
		Orgao:     &models.Orgao{ID: 1, Nome: "Prefeitura de Teste"},
		Agora:     time.Date(2026, 5, 12, 15, 30, 0, 0, time.UTC),
		GeradoPor: "ana",
	}
}

func TestNewValidaTemplates(t *testing.T) {
	a, err := New(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestGerarGravaArquivo(t *testing.T) {
	dir := t.TempDir()
	a, err := New(dir)
	require.NoError(t, err)

	for _, tipo := range []string{TipoDFD, TipoETP, TipoTR} {
		rel, err := a.Gerar(tipo, contextoTeste())
		require.NoError(t, err, tipo)

		// caminho relativo organizado por ano/mês, com a barra do
		// número do processo trocada
		require.True(t, strings.HasPrefix(rel, "documentos/2026/05/"+tipo+"_001-2026_"), rel)
		require.True(t, strings.HasSuffix(rel, ".docx"), rel)

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestGerarTipoDesconhecido(t *testing.T) {
	a, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = a.Gerar("OFICIO", contextoTeste())
	require.Error(t, err)
}

func TestCaminhoAbsoluto(t *testing.T) {
	a, err := New("/srv/media")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/srv/media", "documentos", "2026", "05", "x.docx"), a.CaminhoAbsoluto("documentos/2026/05/x.docx"))
}

func TestCampoUsaPadraoQuandoVazio(t *testing.T) {
	ctx := contextoTeste()

	f := campo(func(p *models.Processo) string { return p.EtpJustificativaContratacao }, padraoJustificativaContratacao)
	require.Equal(t, paragrafos(padraoJustificativaContratacao), f(ctx))

	ctx.Processo.EtpJustificativaContratacao = "Justificativa preenchida pelo setor."
	require.Equal(t, []string{"Justificativa preenchida pelo setor."}, f(ctx))
}

func TestCampoOpcionalSuprimeSecao(t *testing.T) {
	ctx := contextoTeste()

	f := campoOpcional(func(p *models.Processo) string { return p.EtpRequisitosTecnicos })
	require.Empty(t, f(ctx))

	ctx.Processo.EtpRequisitosTecnicos = "Processador de 8 núcleos.\n16 GB de RAM."
	require.Equal(t, []string{"Processador de 8 núcleos.", "16 GB de RAM."}, f(ctx))
}

func TestSecaoDotacaoMontaLinhas(t *testing.T) {
	ctx := contextoTeste()
	require.Empty(t, secaoDotacao(ctx))

	ctx.Processo.EtpDotacaoProgramaTrabalho = "04.122.0001.2001"
	ctx.Processo.EtpDotacaoFonteRecursos = "1500 - Recursos Livres"
	require.Equal(t, []string{
		"Programa de Trabalho: 04.122.0001.2001",
		"Fonte de Recursos: 1500 - Recursos Livres",
	}, secaoDotacao(ctx))
}

func TestDfdObjetoCaiParaDescricaoCurta(t *testing.T) {
	ctx := contextoTeste()
	tpl := dfdTemplate()

	var objeto *Secao
	for i := range tpl.secoes {
		if strings.Contains(tpl.secoes[i].Titulo, "OBJETO") {
			objeto = &tpl.secoes[i]
		}
	}
	require.NotNil(t, objeto)

	require.Equal(t, []string{"Aquisição de computadores"}, objeto.Conteudo(ctx))

	ctx.Processo.DescricaoDetalhada = "Computadores tipo desktop, conforme anexo I."
	require.Equal(t, []string{"Computadores tipo desktop, conforme anexo I."}, objeto.Conteudo(ctx))
}

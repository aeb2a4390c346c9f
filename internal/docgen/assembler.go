package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/google/uuid"
)

// Tipos de documento gerados.
const (
	TipoDFD = "DFD"
	TipoETP = "ETP"
	TipoTR  = "TR"
)

var TipoLabels = map[string]string{
	TipoDFD: "Documento de Formalização da Demanda",
	TipoETP: "Estudo Técnico Preliminar",
	TipoTR:  "Termo de Referência",
}

// Assembler monta documentos .docx a partir das tabelas estáticas de
// seções e grava os arquivos sob dir/documentos/AAAA/MM.
type Assembler struct {
	dir       string
	templates map[string]template
}

// New valida as tabelas de seções contra o modelo de dados na
// inicialização; um template malformado é erro de programação e
// impede o servidor de subir.
func New(dir string) (*Assembler, error) {
	a := &Assembler{
		dir: dir,
		templates: map[string]template{
			TipoDFD: dfdTemplate(),
			TipoETP: etpTemplate(),
			TipoTR:  trTemplate(),
		},
	}
	for tipo, t := range a.templates {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("template %s: %w", tipo, err)
		}
	}
	return a, nil
}

func TipoValido(tipo string) bool {
	_, ok := TipoLabels[tipo]
	return ok
}

// Gerar monta o documento do tipo pedido e grava o arquivo. Devolve o
// caminho relativo ao diretório de documentos, para registro no banco.
// Em erro de escrita o arquivo parcial é removido; nunca fica um
// arquivo pela metade referenciado.
func (a *Assembler) Gerar(tipo string, ctx *Contexto) (string, error) {
	t, ok := a.templates[tipo]
	if !ok {
		return "", fmt.Errorf("tipo de documento desconhecido: %s", tipo)
	}

	doc := docx.New().WithDefaultTheme()

	titulo := doc.AddParagraph().Justification("center")
	titulo.AddText(t.titulo).Size("32").Bold()
	if t.subtitulo != "" {
		sub := doc.AddParagraph().Justification("center")
		sub.AddText(t.subtitulo).Size("24")
	}

	doc.AddParagraph()
	for _, linha := range t.cabecalho(ctx) {
		p := doc.AddParagraph()
		p.AddText(linha[0] + ": ").Bold()
		p.AddText(linha[1])
	}

	for _, sec := range t.secoes {
		conteudo := sec.Conteudo(ctx)
		if len(conteudo) == 0 {
			continue
		}
		h := doc.AddParagraph()
		h.AddText(sec.Titulo).Size("28").Bold()
		for _, par := range conteudo {
			doc.AddParagraph().AddText(par)
		}
	}

	doc.AddParagraph()
	doc.AddParagraph()
	doc.AddParagraph().AddText(strings.Repeat("_", 50))
	for _, linha := range t.assinatura(ctx) {
		doc.AddParagraph().AddText(linha)
	}

	nome := fmt.Sprintf("%s_%s_%s_%s.docx",
		tipo,
		strings.ReplaceAll(ctx.Processo.NumeroProcesso, "/", "-"),
		ctx.Agora.Format("20060102_150405"),
		uuid.NewString()[:8],
	)
	rel := filepath.Join("documentos", ctx.Agora.Format("2006"), ctx.Agora.Format("01"), nome)
	abs := filepath.Join(a.dir, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de documentos: %w", err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("criar arquivo: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		os.Remove(abs)
		return "", fmt.Errorf("gravar documento: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("fechar arquivo: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// CaminhoAbsoluto resolve o caminho gravado no banco para o arquivo em
// disco.
func (a *Assembler) CaminhoAbsoluto(rel string) string {
	return filepath.Join(a.dir, filepath.FromSlash(rel))
}

package docgen

// Textos padrão aplicados na montagem dos documentos quando o campo
// correspondente do processo está em branco. O conteúdo segue o
// formulário usado pela Administração; cada seção tem o seu próprio
// texto, não há padrão genérico.
const (
	padraoASerPreenchido = "A ser preenchido."

	padraoValorEstimadoDFD = "A ser definido após pesquisa de preços."

	padraoJustificativaContratacao = "A contratação se faz necessária para atender as demandas do órgão."

	padraoResponsavelDemanda = "A ser definido."

	padraoAlinhamentoEstrategico = "A contratação está alinhada com os objetivos estratégicos do órgão."

	padraoEspecificacoesTecnicas = "Conforme especificações detalhadas no anexo."

	padraoPca = "Este órgão não elaborou Plano de Contratações Anual para este ano, " +
		"motivo pelo qual deixo de indicar a previsão desta contratação neste tópico."

	padraoEstimativaQuantidades = "Foi emitido relatório de consumo dos últimos 12 meses de todas as repartições " +
		"deste órgão público, a fim de identificar os quantitativos de produtos consumidos por esta Administração.\n" +
		"Além disso, foi enviado ofício para todas as repartições que utilizam esse produto, a fim de indagar se " +
		"haverá aumento de consumo em algum item específico, bem como se há algum produto extra a ser considerado " +
		"para a próxima compra.\n" +
		"Em que pese os levantamentos acima referidos, mensurar sua quantidade exata para uso durante o período " +
		"de 12 meses não se mostra possível.\n" +
		"Diante disso, opta-se por realizar pregão na modalidade registro de preços."

	padraoLevantamentoMercado = "Considerando que não há soluções mercadológicas a serem consideradas para a " +
		"aquisição desse objeto, deixo de fazer este levantamento, especialmente porque se trata de uma compra de " +
		"baixa complexidade e não há outros meios de adquirir estes itens, a não ser pela compra desses produtos " +
		"com fornecedores que trabalham neste ramo."

	padraoDescricaoSolucao = "Considerando os levantamentos realizados neste Estudo Técnico Preliminar, chegou-se " +
		"à conclusão de que não há outras soluções mercadológicas a serem consideradas, a não ser a compra desses " +
		"produtos por intermédio de fornecedores.\n" +
		"Os quantitativos, em que pese terem sido levantados por intermédio de relatórios e ofícios para as demais " +
		"secretarias requisitantes, ainda sim podem sofrer alteração no decorrer do ano, razão pela qual optou-se " +
		"por realizar um pregão na modalidade registro de preços."

	padraoJustificativaParcelamento = "Em se tratando de aquisição de produtos divisíveis, os quais serão comprados " +
		"por intermédio de um pregão na modalidade registro de preços e que há um rol extenso de materiais diferentes " +
		"que devem ser fornecidos, opta-se por executar a licitação dividida em itens, uma vez que ampliará a " +
		"competitividade e não limitará os fornecedores que não possuem determinados itens para fornecimento."

	padraoResultadosPretendidos = "Como não há soluções comparativas em relação a essa compra, não há como " +
		"demonstrar os resultados pretendidos em detrimento de outras hipóteses."

	padraoProvidencias = "Não há providências a serem adotadas pela Administração nesta compra."

	padraoContratacoesCorrelatas = "Não há contratações correlatas e/ou interdependentes para essa aquisição."

	padraoImpactosAmbientais = "Não há medidas sustentáveis ou impactos ambientais a serem considerados nessa contratação."
)

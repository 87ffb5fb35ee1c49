package survey

// Field is a logical field name. The registry below maps it to the opaque
// column id of survey board 9242892489; handlers and the engine never touch
// raw column ids directly.
type Field string

const (
	FieldCliente       Field = "cliente"
	FieldDestino       Field = "destino"
	FieldDataViagem    Field = "dataViagem"
	FieldNumeroNegocio Field = "numeroNegocio"
	FieldTipo          Field = "tipo"

	FieldNumeroNegocioMirror Field = "numeroNegocioMirror"
	FieldChaveAcesso         Field = "chaveAcesso"

	FieldHotel1Name   Field = "hotel1Name"
	FieldHotel1Rating Field = "hotel1Rating"
	FieldHotel2Name   Field = "hotel2Name"
	FieldHotel2Rating Field = "hotel2Rating"
	FieldHotel3Name   Field = "hotel3Name"
	FieldHotel3Rating Field = "hotel3Rating"
	FieldHotel4Name   Field = "hotel4Name"
	FieldHotel4Rating Field = "hotel4Rating"

	FieldPasseio1Name    Field = "passeio1Name"
	FieldPasseio1Rating  Field = "passeio1Rating"
	FieldPasseio2Name    Field = "passeio2Name"
	FieldPasseio2Rating  Field = "passeio2Rating"
	FieldPasseio3Name    Field = "passeio3Name"
	FieldPasseio3Rating  Field = "passeio3Rating"
	FieldPasseio4Name    Field = "passeio4Name"
	FieldPasseio4Rating  Field = "passeio4Rating"
	FieldPasseio5Name    Field = "passeio5Name"
	FieldPasseio5Rating  Field = "passeio5Rating"
	FieldPasseio6Name    Field = "passeio6Name"
	FieldPasseio6Rating  Field = "passeio6Rating"
	FieldPasseio7Name    Field = "passeio7Name"
	FieldPasseio7Rating  Field = "passeio7Rating"
	FieldPasseio8Name    Field = "passeio8Name"
	FieldPasseio8Rating  Field = "passeio8Rating"
	FieldPasseio9Name    Field = "passeio9Name"
	FieldPasseio9Rating  Field = "passeio9Rating"
	FieldPasseio10Name   Field = "passeio10Name"
	FieldPasseio10Rating Field = "passeio10Rating"

	FieldRest1Name    Field = "rest1Name"
	FieldRest1Rating  Field = "rest1Rating"
	FieldRest2Name    Field = "rest2Name"
	FieldRest2Rating  Field = "rest2Rating"
	FieldRest3Name    Field = "rest3Name"
	FieldRest3Rating  Field = "rest3Rating"
	FieldRest4Name    Field = "rest4Name"
	FieldRest4Rating  Field = "rest4Rating"
	FieldRest5Name    Field = "rest5Name"
	FieldRest5Rating  Field = "rest5Rating"
	FieldRest6Name    Field = "rest6Name"
	FieldRest6Rating  Field = "rest6Rating"
	FieldRest7Name    Field = "rest7Name"
	FieldRest7Rating  Field = "rest7Rating"
	FieldRest8Name    Field = "rest8Name"
	FieldRest8Rating  Field = "rest8Rating"
	FieldRest9Name    Field = "rest9Name"
	FieldRest9Rating  Field = "rest9Rating"
	FieldRest10Name   Field = "rest10Name"
	FieldRest10Rating Field = "rest10Rating"

	FieldNotaMalhaAerea           Field = "notaMalhaAerea"
	FieldNotaViagemGeral          Field = "notaViagemGeral"
	FieldNotaAssentosAdequados    Field = "notaAssentosAdequados"
	FieldNotaMalhaAerea2          Field = "notaMalhaAerea2"
	FieldNotaAssistenciaAeroporto Field = "notaAssistenciaAeroporto"
	FieldNotaTempoConexao         Field = "notaTempoConexao"
	FieldNotaDMC1                 Field = "notaDMC1"
	FieldNotaDMC2                 Field = "notaDMC2"
	FieldNomeDMC1                 Field = "nomeDMC1"
	FieldNomeDMC2                 Field = "nomeDMC2"
	FieldNotaGuiasLocais          Field = "notaGuiasLocais"
	FieldNotaTransfer             Field = "notaTransfer"
	FieldNotaAlimentacao          Field = "notaAlimentacao"
	FieldAvaliacaoMaterial        Field = "avaliacaoMaterial"
	FieldNotaTopAntesViagem       Field = "notaTopAntesViagem"

	FieldExperienciaTop         Field = "experienciaTop"
	FieldQualidadeProposta      Field = "qualidadeProposta"
	FieldMateriaisComunicacao   Field = "materiaisComunicacao"
	FieldGerenteContas          Field = "gerenteContas"
	FieldAtendimentoCorporativo Field = "atendimentoCorporativo"
	FieldRSVP                   Field = "rsvp"
	FieldEquipeCampo            Field = "equipeCampo"
	FieldServicosTecnologia     Field = "servicosTecnologia"
	FieldViagemGeralCorporativo Field = "viagemGeralCorporativo"
	FieldIndicariaTop           Field = "indicariaTop"
	FieldAvaliacaoBrindes       Field = "avaliacaoBrindes"
	FieldAvalieDestino          Field = "avalieDestino"

	FieldComentarios              Field = "comentarios"
	FieldSugestaoDestino          Field = "sugestaoDestino"
	FieldConvidadosNoShow         Field = "convidadosNoShow"
	FieldAvaliacaoCiasAereas      Field = "avaliacaoCiasAereas"
	FieldNomeGuiasLocais          Field = "nomeGuiasLocais"
	FieldComentariosGuiasLocais   Field = "comentariosGuiasLocais"
	FieldComentariosTransfer      Field = "comentariosTransfer"
	FieldComentariosGuia          Field = "comentariosGuia"
	FieldSugestoes                Field = "sugestoes"
	FieldComentariosAlimentacao   Field = "comentariosAlimentacao"
	FieldQuaisCustosExtras        Field = "quaisCustosExtras"
	FieldComentarioPasseio        Field = "comentarioPasseio"
	FieldComentariosMelhorias     Field = "comentariosMelhorias"
	FieldComenteExperiencia       Field = "comenteExperiencia"
	FieldComenteCriacao           Field = "comenteCriacao"
	FieldComenteQualidade         Field = "comenteQualidade"

	FieldNomeGuia        Field = "nomeGuia"
	FieldNomeCorporativo Field = "nomeCorporativo"
)

// columnIDs is the Column Registry: a fixed logical-name -> column-id map,
// loaded once and never mutated. Lookups of unknown fields resolve to ""
// which the value accessors treat as absent.
var columnIDs = map[Field]string{
	FieldCliente:       "text_mkrjdnry",
	FieldDestino:       "text_mkrb17ct",
	FieldDataViagem:    "text_mksq2j87",
	FieldNumeroNegocio: "text_mkrkqj1g",
	FieldTipo:          "color_mksvhn92",

	FieldNumeroNegocioMirror: "lookup_mkrkwqep",
	FieldChaveAcesso:         "text_mkxd7q83",

	FieldHotel1Name:   "text_mkrjf13y",
	FieldHotel1Rating: "numeric_mkrjpfxv",
	FieldHotel2Name:   "text_mkrjk4yg",
	FieldHotel2Rating: "numeric_mkrjg1ar",
	FieldHotel3Name:   "text_mkwbhmb8",
	FieldHotel3Rating: "numeric_mkwbs9zj",
	FieldHotel4Name:   "text_mkwb72y5",
	FieldHotel4Rating: "numeric_mkwbspwv",

	FieldPasseio1Name:    "text_mksdf2av",
	FieldPasseio1Rating:  "numeric_mkrj6132",
	FieldPasseio2Name:    "text_mksd268p",
	FieldPasseio2Rating:  "numeric_mksdsjte",
	FieldPasseio3Name:    "text_mksdr0qv",
	FieldPasseio3Rating:  "numeric_mksdyxw2",
	FieldPasseio4Name:    "text_mksdppd8",
	FieldPasseio4Rating:  "numeric_mksdy42p",
	FieldPasseio5Name:    "text_mkwb139p",
	FieldPasseio5Rating:  "numeric_mkwb8wbk",
	FieldPasseio6Name:    "text_mkwbr83g",
	FieldPasseio6Rating:  "numeric_mkwbxvtr",
	FieldPasseio7Name:    "text_mkwbay38",
	FieldPasseio7Rating:  "numeric_mkwbvrp7",
	FieldPasseio8Name:    "text_mkwbcdag",
	FieldPasseio8Rating:  "numeric_mkwbyg53",
	FieldPasseio9Name:    "text_mkwbae9e",
	FieldPasseio9Rating:  "numeric_mkwbb4tc",
	FieldPasseio10Name:   "text_mkwb7sn7",
	FieldPasseio10Rating: "numeric_mkwbwt0q",

	FieldRest1Name:    "text_mksvnywe",
	FieldRest1Rating:  "numeric_mksv5c1r",
	FieldRest2Name:    "text_mksvbzw7",
	FieldRest2Rating:  "numeric_mksvwpmx",
	FieldRest3Name:    "text_mksv90t7",
	FieldRest3Rating:  "numeric_mksvw70j",
	FieldRest4Name:    "text_mksv7z2r",
	FieldRest4Rating:  "numeric_mksvncrj",
	FieldRest5Name:    "text_mksv5a0x",
	FieldRest5Rating:  "numeric_mksvcc72",
	FieldRest6Name:    "text_mkwbx4dw",
	FieldRest6Rating:  "numeric_mkwbw80h",
	FieldRest7Name:    "text_mkwb3h9m",
	FieldRest7Rating:  "numeric_mkwb2tr4",
	FieldRest8Name:    "text_mkwbvtja",
	FieldRest8Rating:  "numeric_mkwb301n",
	FieldRest9Name:    "text_mkwbremc",
	FieldRest9Rating:  "numeric_mkwbr94z",
	FieldRest10Name:   "text_mkwbacpf",
	FieldRest10Rating: "numeric_mkwbk94v",

	FieldNotaMalhaAerea:           "numeric_mkrjqam",
	FieldNotaViagemGeral:          "numeric_mkrjv5re",
	FieldNotaAssentosAdequados:    "numeric_mksd3094",
	FieldNotaMalhaAerea2:          "numeric_mksdw5nf",
	FieldNotaAssistenciaAeroporto: "numeric_mksdt1bq",
	FieldNotaTempoConexao:         "numeric_mksds0py",
	FieldNotaDMC1:                 "numeric_mksdja3e",
	FieldNotaDMC2:                 "numeric_mksdv98h",
	FieldNomeDMC1:                 "text_mksdhgmp",
	FieldNomeDMC2:                 "text_mksdaqvj",
	FieldNotaGuiasLocais:          "numeric_mksdsem2",
	FieldNotaTransfer:             "numeric_mksd391j",
	FieldNotaAlimentacao:          "numeric_mksqce6j",
	FieldAvaliacaoMaterial:        "numeric_mksqebx9",
	FieldNotaTopAntesViagem:       "numeric_mkw5ggsf",

	FieldExperienciaTop:         "numeric_mkswcfyz",
	FieldQualidadeProposta:      "numeric_mkswwx18",
	FieldMateriaisComunicacao:   "numeric_mksw7pb4",
	FieldGerenteContas:          "numeric_mkswxtje",
	FieldAtendimentoCorporativo: "numeric_mksw2p8t",
	FieldRSVP:                   "numeric_mksw7wav",
	FieldEquipeCampo:            "numeric_mkswe8sf",
	FieldServicosTecnologia:     "numeric_mksweem",
	FieldViagemGeralCorporativo: "numeric_mkswarb1",
	FieldIndicariaTop:           "numeric_mkwx31h6",
	FieldAvaliacaoBrindes:       "numeric_mkwzk7ty",
	FieldAvalieDestino:          "numeric_mkwzag7t",

	FieldComentarios:            "long_text_mkrjwfwx",
	FieldSugestaoDestino:        "long_text_mkrjd4z0",
	FieldConvidadosNoShow:       "long_text_mksdpbqr",
	FieldAvaliacaoCiasAereas:    "long_text_mksdw43g",
	FieldNomeGuiasLocais:        "long_text_mksdgq94",
	FieldComentariosGuiasLocais: "long_text_mksdg5nd",
	FieldComentariosTransfer:    "long_text_mksdxghk",
	FieldComentariosGuia:        "long_text_mksdfcf4",
	FieldSugestoes:              "long_text_mksdxwh3",
	FieldComentariosAlimentacao: "long_text_mksq9zqr",
	FieldQuaisCustosExtras:      "long_text_mksq9rnp",
	FieldComentarioPasseio:      "long_text_mksvbj9b",
	FieldComentariosMelhorias:   "long_text_mksw2m76",
	FieldComenteExperiencia:     "long_text_mkwbsxh0",
	FieldComenteCriacao:         "long_text_mkwb57md",
	FieldComenteQualidade:       "long_text_mkwb4g5f",

	FieldNomeGuia:        "text_mksdvk9t",
	FieldNomeCorporativo: "text_mkswbqbp",
}

// ColumnID resolves a logical field to its board column id, or "" when the
// field is unknown.
func ColumnID(f Field) string {
	return columnIDs[f]
}

// Slot is one name/rating column pair of a named-entity kind.
type Slot struct {
	Name   Field
	Rating Field
}

// EntityKind describes one family of named entities (hotels, tours,
// restaurants, DMCs) as pure configuration. The deduplication and
// distribution scans are driven generically over these records.
type EntityKind struct {
	Kind  string
	Slots []Slot
}

var (
	Hotels = EntityKind{Kind: "Hotéis", Slots: []Slot{
		{FieldHotel1Name, FieldHotel1Rating},
		{FieldHotel2Name, FieldHotel2Rating},
		{FieldHotel3Name, FieldHotel3Rating},
		{FieldHotel4Name, FieldHotel4Rating},
	}}

	Passeios = EntityKind{Kind: "Passeios", Slots: []Slot{
		{FieldPasseio1Name, FieldPasseio1Rating},
		{FieldPasseio2Name, FieldPasseio2Rating},
		{FieldPasseio3Name, FieldPasseio3Rating},
		{FieldPasseio4Name, FieldPasseio4Rating},
		{FieldPasseio5Name, FieldPasseio5Rating},
		{FieldPasseio6Name, FieldPasseio6Rating},
		{FieldPasseio7Name, FieldPasseio7Rating},
		{FieldPasseio8Name, FieldPasseio8Rating},
		{FieldPasseio9Name, FieldPasseio9Rating},
		{FieldPasseio10Name, FieldPasseio10Rating},
	}}

	Restaurantes = EntityKind{Kind: "Restaurantes", Slots: []Slot{
		{FieldRest1Name, FieldRest1Rating},
		{FieldRest2Name, FieldRest2Rating},
		{FieldRest3Name, FieldRest3Rating},
		{FieldRest4Name, FieldRest4Rating},
		{FieldRest5Name, FieldRest5Rating},
		{FieldRest6Name, FieldRest6Rating},
		{FieldRest7Name, FieldRest7Rating},
		{FieldRest8Name, FieldRest8Rating},
		{FieldRest9Name, FieldRest9Rating},
		{FieldRest10Name, FieldRest10Rating},
	}}

	DMCs = EntityKind{Kind: "DMC", Slots: []Slot{
		{FieldNomeDMC1, FieldNotaDMC1},
		{FieldNomeDMC2, FieldNotaDMC2},
	}}
)

// SimpleRatingField pairs a simple numeric rating field with the display
// label used in distribution payloads. DMC labels are placeholders; the
// distribution calculator replaces them with the names entered on the trip.
type SimpleRatingField struct {
	Field Field
	Label string
}

var simpleRatingFields = []SimpleRatingField{
	{FieldNotaMalhaAerea, "Nota Malha Aérea"},
	{FieldNotaAssentosAdequados, "Assentos"},
	{FieldNotaMalhaAerea2, "Malha Aérea"},
	{FieldNotaAssistenciaAeroporto, "Assistência Aeroporto"},
	{FieldNotaTempoConexao, "Tempo Conexão"},
	{FieldNotaDMC1, "DMC 1"},
	{FieldNotaDMC2, "DMC 2"},
	{FieldNotaGuiasLocais, "Guias Locais"},
	{FieldNotaTransfer, "Transfer"},
	{FieldAvaliacaoMaterial, "Material Criação"},
	{FieldNotaAlimentacao, "Alimentação"},
	{FieldExperienciaTop, "Experiência com a Top"},
	{FieldQualidadeProposta, "Qualidade e Criatividade da Proposta"},
	{FieldMateriaisComunicacao, "Materiais Comunicação"},
	{FieldGerenteContas, "Gerente de Contas"},
	{FieldAtendimentoCorporativo, "Atendimento Corporativo"},
	{FieldRSVP, "RSVP"},
	{FieldEquipeCampo, "Equipe de Campo"},
	{FieldViagemGeralCorporativo, "Viagem em Geral"},
	{FieldServicosTecnologia, "Serviços de Tecnologia"},
	{FieldIndicariaTop, "Indicaria a Top?"},
	{FieldNotaTopAntesViagem, "Top Antes da Viagem"},
	{FieldNotaViagemGeral, "Viagem Geral"},
}

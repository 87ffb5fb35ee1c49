package domain

// Survey types ("tipo") as labelled on the board. The tipo selects which
// long-text question set applies and how comment authors are resolved.
const (
	TipoGuias       = "Guias"
	TipoConvidados  = "Convidados"
	TipoCorporativo = "Corporativo"
)

// NamedRating is a free-text entity name (hotel, tour, restaurant, DMC)
// paired with its rating. Rating is nil when no respondent scored it.
type NamedRating struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

// QuestionAnswer is one free-text survey answer bucketed by topic.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LongTextComment is one long-text answer, or the joined answers of several
// respondents under the same title. Author is only set on the single-response
// path; aggregated comments embed authors in the content.
type LongTextComment struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Author  *string `json:"author,omitempty"`
}

// FoodSection groups everything food-related in an evaluation.
type FoodSection struct {
	Questions    []QuestionAnswer `json:"questions"`
	Restaurantes []NamedRating    `json:"restaurantes"`
	Geral        *float64         `json:"alimentacaoGeral"`
}

// TripEvaluation is the normalized record for one business number. It is
// rebuilt on every read from the matching survey items and never persisted.
// JSON field names follow the board's Portuguese vocabulary, which the
// existing dashboard consumes.
type TripEvaluation struct {
	ID         string `json:"id"`
	Cliente    string `json:"cliente"`
	Destino    string `json:"destino"`
	DataViagem string `json:"dataViagem"`

	Hotels   []NamedRating `json:"hotels"`
	Passeios []NamedRating `json:"passeios"`

	MalhaAerea  []QuestionAnswer `json:"malhaAerea"`
	Alimentacao FoodSection      `json:"alimentacao"`
	Acomodacao  []QuestionAnswer `json:"acomodacao"`
	Geral       []QuestionAnswer `json:"geral"`

	TopAntesViagem       *float64 `json:"topAntesViagem"`
	ViagemGeral          *float64 `json:"viagemGeral"`
	IndicariaTop         *float64 `json:"indicariaTop"`
	Assentos             *float64 `json:"assentos"`
	MalhaAerea2          *float64 `json:"malhaAerea2"`
	AssistenciaAeroporto *float64 `json:"assistenciaAeroporto"`
	TempoConexao         *float64 `json:"tempoConexao"`
	DMC1                 *float64 `json:"dmc1"`
	DMC2                 *float64 `json:"dmc2"`
	NomeDMC1             string   `json:"nomeDMC1"`
	NomeDMC2             string   `json:"nomeDMC2"`
	GuiasLocais          *float64 `json:"guiasLocais"`
	Transfer             *float64 `json:"transfer"`
	MaterialCriacao      *float64 `json:"materialCriacao"`

	ExperienciaTop         *float64 `json:"experienciaTop"`
	QualidadeProposta      *float64 `json:"qualidadeProposta"`
	MateriaisComunicacao   *float64 `json:"materiaisComunicacao"`
	GerenteContas          *float64 `json:"gerenteContas"`
	AtendimentoCorporativo *float64 `json:"atendimentoCorporativo"`
	RSVP                   *float64 `json:"rsvp"`
	EquipeCampo            *float64 `json:"equipeCampo"`
	ViagemGeralCorporativo *float64 `json:"viagemGeralCorporativo"`
	ServicosTecnologia     *float64 `json:"servicosTecnologia"`

	LongTextComments []LongTextComment `json:"longTextComments"`
}

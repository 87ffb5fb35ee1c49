package survey

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// Collect deduplicates the kind's named entities across every item and slot.
// Each distinct non-empty name gets one NamedRating whose rating is the mean
// of every rating attributed to that name; a name entered twice on the same
// item contributes both ratings. Names appear in order of first observation.
func (k EntityKind) Collect(items []domain.SurveyItem) []domain.NamedRating {
	names, byName := k.ratingsByName(items)

	result := make([]domain.NamedRating, 0, len(names))
	for _, name := range names {
		result = append(result, domain.NamedRating{Name: name, Rating: mean(byName[name])})
	}
	return result
}

// ratingsByName scans items x slots once, returning distinct names in order
// of first appearance and the raw rating samples collected per name. Slots
// with an empty name are skipped; slots with an absent rating still register
// the name but contribute no sample.
func (k EntityKind) ratingsByName(items []domain.SurveyItem) ([]string, map[string][]float64) {
	var names []string
	byName := make(map[string][]float64)

	for _, item := range items {
		for _, slot := range k.Slots {
			name := TextValue(item.ColumnValues, slot.Name)
			if name == "" {
				continue
			}
			if _, seen := byName[name]; !seen {
				names = append(names, name)
				byName[name] = nil
			}
			if rating := NumericValue(item.ColumnValues, slot.Rating); rating != nil {
				byName[name] = append(byName[name], *rating)
			}
		}
	}
	return names, byName
}

// Evaluate builds the Trip Evaluation for a set of items sharing one
// business number. A single response is normalized directly; multiple
// responses are aggregated with per-field arithmetic means.
func Evaluate(items []domain.SurveyItem, tipo string) domain.TripEvaluation {
	if len(items) == 1 {
		return normalizeOne(items[0], tipo)
	}
	return aggregate(items, tipo)
}

// normalizeOne transforms exactly one item without any averaging. Slot pairs
// become candidate named ratings, filtered to drop empty names.
func normalizeOne(item domain.SurveyItem, tipo string) domain.TripEvaluation {
	cv := item.ColumnValues

	eval := domain.TripEvaluation{
		ID:         item.BoardItemID,
		Cliente:    TextValue(cv, FieldCliente),
		Destino:    TextValue(cv, FieldDestino),
		DataViagem: TextValue(cv, FieldDataViagem),
		Hotels:     slotEntities(cv, Hotels),
		Passeios:   slotEntities(cv, Passeios),
		NomeDMC1:   TextValue(cv, FieldNomeDMC1),
		NomeDMC2:   TextValue(cv, FieldNomeDMC2),
	}

	air, food, lodging, general := classifyQuestions(cv)
	eval.MalhaAerea = air
	eval.Acomodacao = lodging
	eval.Geral = general
	eval.Alimentacao = domain.FoodSection{
		Questions:    food,
		Restaurantes: slotEntities(cv, Restaurantes),
		Geral:        NumericValue(cv, FieldNotaAlimentacao),
	}

	one := []domain.SurveyItem{item}
	fillRatings(&eval, one)
	eval.LongTextComments = CollectComments(one, tipo)
	return eval
}

// aggregate merges every response for one business number: header fields
// from the first item, named entities deduplicated across all items, every
// simple rating averaged.
func aggregate(items []domain.SurveyItem, tipo string) domain.TripEvaluation {
	first := items[0]
	cv := first.ColumnValues

	eval := domain.TripEvaluation{
		ID:         first.BoardItemID,
		Cliente:    TextValue(cv, FieldCliente),
		Destino:    TextValue(cv, FieldDestino),
		DataViagem: TextValue(cv, FieldDataViagem),
		Hotels:     Hotels.Collect(items),
		Passeios:   Passeios.Collect(items),
		NomeDMC1:   TextValue(cv, FieldNomeDMC1),
		NomeDMC2:   TextValue(cv, FieldNomeDMC2),
	}

	// Free-text topic buckets come from the first respondent only; answers
	// are per-respondent prose and do not aggregate.
	air, food, lodging, general := classifyQuestions(cv)
	eval.MalhaAerea = air
	eval.Acomodacao = lodging
	eval.Geral = general
	eval.Alimentacao = domain.FoodSection{
		Questions:    food,
		Restaurantes: Restaurantes.Collect(items),
		Geral:        averageField(items, FieldNotaAlimentacao),
	}

	fillRatings(&eval, items)
	eval.LongTextComments = CollectComments(items, tipo)
	return eval
}

// fillRatings computes every simple scalar rating of the evaluation as the
// mean over the given items (a single-item slice degenerates to the item's
// own values).
func fillRatings(eval *domain.TripEvaluation, items []domain.SurveyItem) {
	eval.TopAntesViagem = averageField(items, FieldNotaTopAntesViagem)
	eval.ViagemGeral = averageField(items, FieldNotaViagemGeral)
	eval.IndicariaTop = averageField(items, FieldIndicariaTop)
	eval.Assentos = averageField(items, FieldNotaAssentosAdequados)
	eval.MalhaAerea2 = averageField(items, FieldNotaMalhaAerea2)
	eval.AssistenciaAeroporto = averageField(items, FieldNotaAssistenciaAeroporto)
	eval.TempoConexao = averageField(items, FieldNotaTempoConexao)
	eval.DMC1 = averageField(items, FieldNotaDMC1)
	eval.DMC2 = averageField(items, FieldNotaDMC2)
	eval.GuiasLocais = averageField(items, FieldNotaGuiasLocais)
	eval.Transfer = averageField(items, FieldNotaTransfer)
	eval.MaterialCriacao = averageField(items, FieldAvaliacaoMaterial)
	eval.ExperienciaTop = averageField(items, FieldExperienciaTop)
	eval.QualidadeProposta = averageField(items, FieldQualidadeProposta)
	eval.MateriaisComunicacao = averageField(items, FieldMateriaisComunicacao)
	eval.GerenteContas = averageField(items, FieldGerenteContas)
	eval.AtendimentoCorporativo = averageField(items, FieldAtendimentoCorporativo)
	eval.RSVP = averageField(items, FieldRSVP)
	eval.EquipeCampo = averageField(items, FieldEquipeCampo)
	eval.ViagemGeralCorporativo = averageField(items, FieldViagemGeralCorporativo)
	eval.ServicosTecnologia = averageField(items, FieldServicosTecnologia)
}

// slotEntities reads a kind's slots off a single item, one candidate per
// slot, dropping entries without a name. No deduplication happens here.
func slotEntities(cv domain.ColumnValues, kind EntityKind) []domain.NamedRating {
	result := make([]domain.NamedRating, 0, len(kind.Slots))
	for _, slot := range kind.Slots {
		name := TextValue(cv, slot.Name)
		if name == "" {
			continue
		}
		result = append(result, domain.NamedRating{Name: name, Rating: NumericValue(cv, slot.Rating)})
	}
	return result
}

// minQuestionLength filters out short text columns (names, codes) from the
// topic buckets.
const minQuestionLength = 10

var (
	airKeywords     = []string{"malha", "aérea", "voo"}
	foodKeywords    = []string{"alimentação", "restaurante", "comida"}
	lodgingKeywords = []string{"acomodação", "hotel"}
)

// classifyQuestions buckets every long-enough text column by keyword match.
// Priority is fixed: air travel, then food, then lodging; anything else is
// general. A question mentioning both a flight and a hotel lands in the air
// bucket.
func classifyQuestions(cv domain.ColumnValues) (air, food, lodging, general []domain.QuestionAnswer) {
	ids := make([]string, 0, len(cv))
	for id := range cv {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		col := cv[id]
		if col.Type == nil || *col.Type != "text" || col.Text == nil {
			continue
		}
		text := *col.Text
		if utf8.RuneCountInString(text) <= minQuestionLength {
			continue
		}
		qa := domain.QuestionAnswer{Question: text, Answer: text}
		lower := strings.ToLower(text)
		switch {
		case containsAny(lower, airKeywords):
			air = append(air, qa)
		case containsAny(lower, foodKeywords):
			food = append(food, qa)
		case containsAny(lower, lodgingKeywords):
			lodging = append(lodging, qa)
		default:
			general = append(general, qa)
		}
	}
	return air, food, lodging, general
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

package survey

import (
	"github.com/topservice/pesquisas-api/internal/domain"
)

// testItem builds a survey item whose text cells are keyed by logical field.
func testItem(id string, cells map[Field]string) domain.SurveyItem {
	bag := make(domain.ColumnValues, len(cells))
	colType := "text"
	for f, text := range cells {
		value := text
		bag[ColumnID(f)] = domain.ColumnValue{Text: &value, Type: &colType}
	}
	return domain.SurveyItem{
		BoardItemID:  id,
		BoardID:      "9242892489",
		ItemName:     "Pesquisa " + id,
		ColumnValues: bag,
	}
}

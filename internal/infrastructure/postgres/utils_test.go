package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
)

func TestLikePrefix(t *testing.T) {
	assert.Equal(t, "ROMA%", likePrefix("ROMA"))
	assert.Equal(t, "%", likePrefix(""))
	assert.Equal(t, `50\%\_X\\%`, likePrefix(`50%_X\`))
}

func TestCityRows_DedupFirstWins(t *testing.T) {
	rows := CityRows([]*entity.City{
		{Name: "Castro", Code: "C337", ProvinceInitials: "BG"},
		{Name: "Forlì", Code: "D704", ProvinceInitials: "FC"},
		{Name: "CASTRO", Code: "M261", ProvinceInitials: "LE"},
		{Name: "  ", Code: "Z999"},
	})
	assert.Equal(t, [][]any{
		{"Castro", "CASTRO", "C337", "BG", ""},
		{"Forlì", "FORLI", "D704", "FC", ""},
	}, rows)
}

func TestNationRows(t *testing.T) {
	rows := NationRows([]*entity.Nation{
		{Name: "Italia", Code: entity.ItalyNationCode, Initials: "IT"},
		{Name: "Stati Uniti", Code: "Z404", Initials: "US"},
	})
	assert.Equal(t, [][]any{
		{"Italia", "ITALIA", "0000", "IT"},
		{"Stati Uniti", "STATI UNITI", "Z404", "US"},
	}, rows)
}

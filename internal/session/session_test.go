package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasff-insights-go/internal/refdata"
	"rasff-insights-go/internal/types"
)

func sampleRaws() []types.RawRecord {
	return []types.RawRecord{
		{Reference: "1", DateOfCase: "2024-05-13", NotifyingCountry: "France", OriginCountry: "China", ProductCategory: "wine", HazardCategory: "mycotoxins", HazardSubstance: "Ochratoxin A"},
		{Reference: "2", DateOfCase: "2024-05-14", NotifyingCountry: "Germany", OriginCountry: "Turkey", ProductCategory: "confectionery", HazardCategory: "allergens", HazardSubstance: "Ochratoxin A"},
		{Reference: "3", DateOfCase: "2024-05-15", NotifyingCountry: "France", OriginCountry: "China", ProductCategory: "wine", HazardCategory: "mycotoxins", HazardSubstance: "Ochratoxine A"},
	}
}

func TestNewSessionNormalizesOnce(t *testing.T) {
	s := New(refdata.DefaultConfig(), sampleRaws(), nil)
	require.Len(t, s.Records, 3)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Wine", s.Records[0].ProductCategory)
	// typo collapsed onto the first-seen spelling within the batch
	assert.Equal(t, "Ochratoxin A", s.Records[2].HazardSubstance)
}

func TestSessionSummaryAndCount(t *testing.T) {
	s := New(refdata.DefaultConfig(), sampleRaws(), nil)
	sum := s.Summary()
	assert.Equal(t, 3, sum.TotalNotifications)
	assert.Equal(t, 2, sum.UniqueProductCategories)

	buckets := s.Count(types.FieldProductCategory)
	require.NotEmpty(t, buckets)
	assert.Equal(t, "Wine", buckets[0].Value)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestSessionCrosstabInvariant(t *testing.T) {
	s := New(refdata.DefaultConfig(), sampleRaws(), nil)
	tbl := s.Crosstab(types.FieldProductCategory, types.FieldHazardCategory)
	assert.Equal(t, len(s.Records), tbl.Total())
}

func TestSessionAppendRawKeepsCorrections(t *testing.T) {
	s := New(refdata.DefaultConfig(), sampleRaws(), nil)
	added := s.AppendRaw([]types.RawRecord{
		{Reference: "4", ProductCategory: "wine", HazardCategory: "mycotoxins", HazardSubstance: "Ochratoxn A"},
	})
	assert.Equal(t, 1, added)
	require.Len(t, s.Records, 4)
	// the incremental batch corrects against vocabulary the session has seen
	assert.Equal(t, "Ochratoxin A", s.Records[3].HazardSubstance)
}

func TestSessionEmptyDataset(t *testing.T) {
	s := New(refdata.DefaultConfig(), nil, nil)
	assert.Empty(t, s.Records)
	assert.Zero(t, s.Summary().TotalNotifications)

	tbl := s.Crosstab(types.FieldProductCategory, types.FieldHazardCategory)
	assert.Zero(t, tbl.Total())
	_, err := s.ChiSquare(types.FieldProductCategory, types.FieldHazardCategory)
	assert.Error(t, err)
}

func TestSessionsDoNotShareState(t *testing.T) {
	a := New(refdata.DefaultConfig(), []types.RawRecord{
		{Reference: "1", HazardSubstance: "Salmonella"},
	}, nil)
	b := New(refdata.DefaultConfig(), []types.RawRecord{
		{Reference: "1", HazardSubstance: "Salmonela"},
	}, nil)
	// b never saw a's vocabulary, so its substance stays verbatim
	assert.Equal(t, "Salmonella", a.Records[0].HazardSubstance)
	assert.Equal(t, "Salmonela", b.Records[0].HazardSubstance)
	assert.NotEqual(t, a.ID, b.ID)
}

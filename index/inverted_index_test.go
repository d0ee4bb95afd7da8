package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epicstalent-sudo/level-up-backend/config"
)

func newSealedIndex() *InvertedIndex {
	settings := config.DefaultIndexSettings()
	ii := New(&settings)
	ii.Refs = []string{"1", "2"}
	ii.Index["java"] = PostingList{
		{DocID: 0, FieldName: "headline", Score: 1},
		{DocID: 0, FieldName: "skills", Score: 1},
	}
	ii.Index["javascript"] = PostingList{{DocID: 1, FieldName: "skills", Score: 1}}
	ii.Index["python"] = PostingList{{DocID: 1, FieldName: "skills", Score: 1}}
	ii.FieldLengths["headline"] = []int{2, 0}
	ii.FieldLengths["skills"] = []int{2, 2}
	ii.FieldLengths["currentRole"] = []int{1, 1}
	ii.Seal()
	return ii
}

func TestInvertedIndex_Seal(t *testing.T) {
	ii := newSealedIndex()

	assert.Equal(t, []string{"java", "javascript", "python"}, ii.Terms())
	assert.Equal(t, 1.0, ii.AvgFieldLength["headline"])
	assert.Equal(t, 2.0, ii.AvgFieldLength["skills"])
	assert.Equal(t, 2, ii.DocCount())
}

func TestInvertedIndex_TermsWithPrefix(t *testing.T) {
	ii := newSealedIndex()

	assert.Equal(t, []string{"java", "javascript"}, ii.TermsWithPrefix("jav"))
	assert.Equal(t, []string{"python"}, ii.TermsWithPrefix("p"))
	assert.Empty(t, ii.TermsWithPrefix("rust"))
	assert.Len(t, ii.TermsWithPrefix(""), 3)
}

func TestInvertedIndex_Postings(t *testing.T) {
	ii := newSealedIndex()

	java := ii.Postings("java")
	assert.Len(t, java, 2)
	assert.Equal(t, "headline", java[0].FieldName)
	assert.Equal(t, "skills", java[1].FieldName)
	assert.Nil(t, ii.Postings("missing"))
}

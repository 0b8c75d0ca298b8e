package teiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTEI = `<?xml version="1.0" encoding="UTF-8"?>
<TEI>
  <teiHeader>
    <fileDesc>
      <titleStmt><title>Sample</title></titleStmt>
      <publicationStmt>
        <publisher>Example Press</publisher>
        <ptr type="URL" target="https://www.example.org/articles/42"/>
        <date>2024-06-01</date>
      </publicationStmt>
      <sourceDesc><author>Jane Roe</author></sourceDesc>
    </fileDesc>
  </teiHeader>
  <text>
    <body>
      <fw>Breaking developments</fw>
      <p>The new word cromulence spread quickly.</p>
      <p>Researchers kept tracking cromulence daily.</p>
    </body>
  </text>
</TEI>`

// TestParseSample extracts every metadata field from a well-formed document.
func TestParseSample(t *testing.T) {
	doc, err := New().Parse([]byte(sampleTEI))
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", doc.Date)
	assert.Equal(t, "Jane Roe", doc.Author)
	assert.Equal(t, "https://www.example.org/articles/42", doc.URL)
	assert.Equal(t, "Example Press", doc.Publisher)
	assert.Equal(t, []string{"Breaking developments"}, doc.Headings)
	// heading text belongs to the body too
	assert.Contains(t, doc.Body, "Breaking developments")
	assert.Contains(t, doc.Body, "cromulence spread quickly")
}

// TestParseMissingNodes leaves absent metadata empty instead of failing.
func TestParseMissingNodes(t *testing.T) {
	doc, err := New().Parse([]byte(`<TEI><text><body><p>words here</p></body></text></TEI>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Date)
	assert.Empty(t, doc.Author)
	assert.Empty(t, doc.Publisher)
	assert.Equal(t, "words here", doc.Body)
}

// TestParseEmpty rejects empty input.
func TestParseEmpty(t *testing.T) {
	_, err := New().Parse([]byte("   "))
	assert.Error(t, err)
}

// TestParseFirstDateWins ignores later date elements.
func TestParseFirstDateWins(t *testing.T) {
	doc, err := New().Parse([]byte(`<TEI><date>2024-01-02</date><date>1999-12-31</date></TEI>`))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", doc.Date)
}

// Package teiparse extracts the flat document representation the pipeline
// consumes from XML-TEI corpus files, as produced by web extraction tools.
package teiparse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
)

// Parser is a stateless XML-TEI document parser.
type Parser struct{}

var _ contract.DocumentParser = (*Parser)(nil)

// New returns a ready parser.
func New() *Parser {
	return &Parser{}
}

// Parse walks the XML token stream once and collects the publication date,
// author, URL or publisher, heading texts and the full body text. The first
// occurrence wins for the metadata fields. Malformed XML yields an error so
// the caller can skip the document.
func (p *Parser) Parse(data []byte) (*schema.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false

	doc := &schema.Document{}
	var (
		metaField    *string // metadata element currently open, nil otherwise
		metaBuf      strings.Builder
		headingDepth int
		headingBuf   strings.Builder
		textDepth    int
		bodyBuf      strings.Builder
	)

	flushMeta := func() {
		if metaField != nil && *metaField == "" {
			*metaField = strings.TrimSpace(metaBuf.String())
		}
		metaField = nil
		metaBuf.Reset()
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "date":
				if doc.Date == "" {
					metaField = &doc.Date
					metaBuf.Reset()
				}
			case "author":
				if doc.Author == "" {
					metaField = &doc.Author
					metaBuf.Reset()
				}
			case "publisher":
				if doc.Publisher == "" {
					metaField = &doc.Publisher
					metaBuf.Reset()
				}
			case "ptr":
				if doc.URL == "" && attrValue(t, "type") == "URL" {
					doc.URL = attrValue(t, "target")
				}
			case "fw", "head":
				headingDepth++
			case "text":
				textDepth++
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "date", "author", "publisher":
				flushMeta()
			case "fw", "head":
				if headingDepth > 0 {
					headingDepth--
					if headingDepth == 0 {
						if heading := strings.TrimSpace(headingBuf.String()); heading != "" {
							doc.Headings = append(doc.Headings, heading)
						}
						headingBuf.Reset()
					}
				}
			case "text":
				if textDepth > 0 {
					textDepth--
				}
			}

		case xml.CharData:
			chunk := string(t)
			if metaField != nil {
				metaBuf.WriteString(chunk)
			}
			if headingDepth > 0 {
				headingBuf.WriteString(chunk)
			}
			// heading text inside the text element also belongs to the body
			if textDepth > 0 {
				bodyBuf.WriteString(chunk)
				bodyBuf.WriteByte(' ')
			}
		}
	}

	doc.Body = strings.Join(strings.Fields(bodyBuf.String()), " ")
	return doc, nil
}

// attrValue returns the value of the named attribute, empty when absent.
func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// Package jsonld renders an analysis result as a JSON-LD seo:Query node.
package jsonld

import (
	"crypto/rand"
	"encoding/json"
	"math"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/oklog/ulid/v2"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/phrase"
)

// Vocabulary namespaces.
const (
	SchemaNS = "https://schema.org/"
	SEONS    = "https://seontology.org/vocab#"
)

// Document is the JSON-LD representation of a Result.
type Document struct {
	Context            Context            `json:"@context" jsonschema:"required"`
	Type               string             `json:"@type" jsonschema:"required,enum=seo:Query"`
	ID                 string             `json:"@id" jsonschema:"required"`
	Name               string             `json:"schema:name" jsonschema:"required"`
	QueryType          string             `json:"seo:queryType" jsonschema:"required,enum=informational,enum=commercial,enum=transactional,enum=navigational"`
	Language           string             `json:"seo:language" jsonschema:"required"`
	QueryScore         int                `json:"seo:queryScore" jsonschema:"required,minimum=0,maximum=100"`
	AlternativeQueries []string           `json:"seo:alternativeQueries" jsonschema:"required"`
	RelatedEntities    []Entity           `json:"seo:relatedEntities" jsonschema:"required"`
	SemanticClusters   []Cluster          `json:"seo:semanticClusters" jsonschema:"required"`
	KeywordDensity     map[string]float64 `json:"seo:keywordDensity" jsonschema:"required"`
	Analysis           Analysis           `json:"seo:pureNlpAnalysis" jsonschema:"required"`
}

// Context maps the prefixes used by Document.
type Context struct {
	Schema string `json:"schema" jsonschema:"required"`
	SEO    string `json:"seo" jsonschema:"required"`
}

// Entity is a related entity node.
type Entity struct {
	Type       string `json:"@type" jsonschema:"required"`
	Name       string `json:"schema:name" jsonschema:"required"`
	EntityType string `json:"seo:entityType" jsonschema:"required"`
}

// Cluster is a semantic cluster node.
type Cluster struct {
	Type      string   `json:"@type" jsonschema:"required"`
	Centroid  string   `json:"seo:centroid" jsonschema:"required"`
	Members   []string `json:"seo:members" jsonschema:"required"`
	Coherence float64  `json:"seo:coherence" jsonschema:"required"`
	Category  string   `json:"seo:category" jsonschema:"required"`
}

// Analysis carries the statistics behind the query.
type Analysis struct {
	LanguageConfidence   float64  `json:"seo:languageConfidence" jsonschema:"required"`
	TokenCount           int      `json:"seo:tokenCount" jsonschema:"required"`
	FilteredWords        int      `json:"seo:filteredWordCount" jsonschema:"required"`
	MeanWeight           float64  `json:"seo:meanWeight" jsonschema:"required"`
	VocabularyRichness   float64  `json:"seo:vocabularyRichness" jsonschema:"required"`
	MeanClusterCoherence float64  `json:"seo:meanClusterCoherence" jsonschema:"required"`
	Keyphrases           []string `json:"seo:keyphrases" jsonschema:"required"`
	StopWords            []string `json:"seo:stopWords" jsonschema:"required"`
	Method               string   `json:"seo:method" jsonschema:"required"`
}

// Method names the analysis technique in every document.
const Method = "statistical-unsupervised"

// Builder constructs JSON-LD documents with unique, time-ordered ids.
type Builder struct {
	entropy *ulid.LockedMonotonicReader
	now     func() time.Time
}

// New creates a new document builder
func New() *Builder {
	return &Builder{
		entropy: &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)},
		now:     time.Now,
	}
}

// Build renders res.
func (b *Builder) Build(res seoquery.Result) Document {
	doc := Document{
		Context:            Context{Schema: SchemaNS, SEO: SEONS},
		Type:               "seo:Query",
		ID:                 "urn:ulid:" + ulid.MustNew(ulid.Timestamp(b.now()), b.entropy).String(),
		Name:               res.MainQuery,
		QueryType:          string(res.QueryType),
		Language:           res.Language,
		QueryScore:         res.Confidence,
		AlternativeQueries: alternatives(res.MainQuery, res.Keyphrases),
		RelatedEntities:    make([]Entity, 0, len(res.Entities)),
		SemanticClusters:   make([]Cluster, 0, len(res.Clusters)),
		KeywordDensity:     make(map[string]float64, len(res.Tokens)),
		Analysis: Analysis{
			LanguageConfidence:   res.LanguageConfidence,
			TokenCount:           res.Metrics.TokenCount,
			FilteredWords:        res.Metrics.FilteredWords,
			MeanWeight:           round(res.Metrics.MeanWeight, 4),
			VocabularyRichness:   round(res.Metrics.VocabularyRichness, 4),
			MeanClusterCoherence: round(res.Metrics.MeanClusterCoherence, 4),
			Keyphrases:           phrase.Texts(res.Keyphrases),
			StopWords:            append([]string{}, res.StopWords...),
			Method:               Method,
		},
	}

	for _, e := range res.Entities {
		doc.RelatedEntities = append(doc.RelatedEntities, Entity{
			Type:       "schema:Thing",
			Name:       e.Text,
			EntityType: string(e.Kind),
		})
	}
	for _, c := range res.Clusters {
		doc.SemanticClusters = append(doc.SemanticClusters, Cluster{
			Type:      "seo:SemanticCluster",
			Centroid:  c.Centroid,
			Members:   append([]string{}, c.Members...),
			Coherence: round(c.Coherence, 4),
			Category:  string(c.Category),
		})
	}
	if n := res.Metrics.FilteredWords; n > 0 {
		for _, t := range res.Tokens {
			doc.KeywordDensity[t.Form] = round(float64(t.Freq)/float64(n)*100, 2)
		}
	}
	return doc
}

// Marshal builds and encodes res.
func (b *Builder) Marshal(res seoquery.Result) ([]byte, error) {
	return json.Marshal(b.Build(res))
}

// alternatives lists keyphrases other than the main query.
func alternatives(main string, phrases []phrase.Phrase) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p.Text != main {
			out = append(out, p.Text)
		}
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Schema returns the JSON Schema of Document.
func Schema() (map[string]interface{}, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	return schemaToMap(reflector.Reflect(&Document{}))
}

func schemaToMap(schema *jsonschema.Schema) (map[string]interface{}, error) {
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

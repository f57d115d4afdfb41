package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	es8 "github.com/elastic/go-elasticsearch/v8"

	"postboard/models"
)

var ErrDisabled = errors.New("search is not configured")

// Document - то, что попадает в индекс posts
type Document struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category,omitempty"`
}

func DocumentFrom(p *models.Post) Document {
	doc := Document{ID: p.ID, Title: p.Title, Content: p.Content, Tags: make([]string, 0, len(p.Tags))}
	for _, t := range p.Tags {
		doc.Tags = append(doc.Tags, t.Name)
	}
	if p.Category != nil {
		doc.Category = p.Category.Name
	}
	return doc
}

type Indexer interface {
	IndexPost(ctx context.Context, doc Document) error
	DeletePost(ctx context.Context, id uint) error
	Search(ctx context.Context, q string, size int) ([]Document, error)
}

type ES struct {
	Client *es8.Client
	Index  string
}

func New(esURL, index string) (*ES, error) {
	es, err := es8.NewClient(es8.Config{Addresses: []string{esURL}, Transport: &http.Transport{}})
	if err != nil {
		return nil, err
	}
	return &ES{Client: es, Index: index}, nil
}

// EnsureIndex создаёт индекс с маппингом; 400 (уже существует) не считается ошибкой
func (e *ES) EnsureIndex(ctx context.Context) error {
	mapping := `{
	  "mappings": {
	    "properties": {
	      "title":    {"type":"text"},
	      "content":  {"type":"text"},
	      "tags":     {"type":"keyword"},
	      "category": {"type":"keyword"}
	    }
	  }
	}`
	res, err := e.Client.Indices.Create(e.Index,
		e.Client.Indices.Create.WithContext(ctx),
		e.Client.Indices.Create.WithBody(bytes.NewBufferString(mapping)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("create index %s: %s", e.Index, res.Status())
	}
	return nil
}

func (e *ES) IndexPost(ctx context.Context, doc Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := e.Client.Index(e.Index, bytes.NewReader(b),
		e.Client.Index.WithContext(ctx),
		e.Client.Index.WithDocumentID(strconv.FormatUint(uint64(doc.ID), 10)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.IsError() {
		return fmt.Errorf("index post %d: %s", doc.ID, res.Status())
	}
	return nil
}

func (e *ES) DeletePost(ctx context.Context, id uint) error {
	res, err := e.Client.Delete(e.Index, strconv.FormatUint(uint64(id), 10),
		e.Client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete post %d: %s", id, res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ES) Search(ctx context.Context, q string, size int) ([]Document, error) {
	body := map[string]any{
		"size": size,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title", "content"},
			},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	res, err := e.Client.Search(
		e.Client.Search.WithContext(ctx),
		e.Client.Search.WithIndex(e.Index),
		e.Client.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", e.Index, res.Status())
	}

	var out searchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		docs = append(docs, h.Source)
	}
	return docs, nil
}

// Noop используется, когда ES_ADDR не задан
type Noop struct{}

func (Noop) IndexPost(context.Context, Document) error { return nil }
func (Noop) DeletePost(context.Context, uint) error    { return nil }
func (Noop) Search(context.Context, string, int) ([]Document, error) {
	return nil, ErrDisabled
}

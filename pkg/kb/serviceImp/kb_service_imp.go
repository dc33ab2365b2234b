package serviceImp

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"agriai/entities"
	"agriai/pkg/apperr"
	"agriai/pkg/kb/embedder"
	"agriai/pkg/kb/repository"
	"agriai/pkg/kb/service"
)

const chunkRunes = 1000

type Svc struct {
	r   repository.KBRepository
	emb embedder.Embedder
	log *zap.Logger
}

// New builds the knowledge-base service. emb may be nil, in which case
// search falls back to keyword matching.
func New(r repository.KBRepository, emb embedder.Embedder, log *zap.Logger) service.KBService {
	return &Svc{r: r, emb: emb, log: log}
}

// chunkText cuts text at the first newline after maxRunes runes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	chs := chunkText(text, chunkRunes)
	if len(chs) == 0 {
		ve := &apperr.ValidationError{}
		ve.Add("text", "must contain readable text")
		return nil, 0, ve
	}
	d := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(ctx, chs)
		if err != nil {
			// chunks without vectors are still found by keyword search
			s.log.Warn("kb embed", zap.String("title", title), zap.Error(err))
			embs = nil
		}
	}

	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		rows[i] = entities.KBChunk{Ord: i, Text: chs[i]}
		if i < len(embs) {
			rows[i].Embedding = embedder.FloatsToBytes(embs[i])
		}
	}
	if err := s.r.CreateDocument(ctx, d, rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// keywordScore is the fraction of query words found in text.
func keywordScore(text string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	low := strings.ToLower(text)
	hits := 0
	for _, w := range words {
		if strings.Contains(low, w) {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

func (s *Svc) Search(ctx context.Context, query string, k int) ([]service.Hit, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return []service.Hit{}, nil
	}

	var qvec []float32
	if s.emb != nil {
		vec, err := s.emb.Embed(ctx, []string{q})
		if err != nil {
			s.log.Warn("kb embed query", zap.Error(err))
		} else if len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks(ctx)
	if err != nil {
		return nil, err
	}

	words := strings.Fields(strings.ToLower(q))
	hits := make([]service.Hit, 0, len(chunks))
	for _, ch := range chunks {
		var sc float64
		if v := embedder.BytesToFloats(ch.Embedding); qvec != nil && len(v) > 0 {
			sc = cosine(qvec, v)
		} else {
			sc = keywordScore(ch.Text, words)
		}
		if sc <= 0 {
			continue
		}
		hits = append(hits, service.Hit{ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text, Score: sc})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}

	ids := make([]uint, 0, len(hits))
	seen := map[uint]bool{}
	for _, h := range hits {
		if !seen[h.DocID] {
			seen[h.DocID] = true
			ids = append(ids, h.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		if d, ok := meta[hits[i].DocID]; ok {
			hits[i].DocTitle = d.Title
			hits[i].SourceURL = d.SourceURL
		}
	}
	return hits, nil
}

func (s *Svc) ListDocuments(ctx context.Context) ([]entities.KBDocument, error) {
	return s.r.ListDocs(ctx)
}

package recommend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// HeuristicProvider is a lightweight, offline implementation: genre overlap
// plus name similarity against recently watched titles. It keeps the
// Provider shape (context, timeout) so a real backend can slot in later.
type HeuristicProvider struct{}

func NewHeuristicProvider() *HeuristicProvider { return &HeuristicProvider{} }

// Recommend ranks candidates by affinity to the recently watched set.
// Already-watched titles are excluded. Timeout: 2s.
func (p *HeuristicProvider) Recommend(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	watched := make(map[string]struct{}, len(req.RecentlyWatched))
	for _, w := range req.RecentlyWatched {
		watched[w.ID] = struct{}{}
	}

	type scored struct {
		id    string
		score float64
		pos   int
	}
	var ranked []scored
	for i, c := range req.Candidates {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		default:
		}
		if _, ok := watched[c.ID]; ok {
			continue
		}
		s := 0.0
		for ri, w := range req.RecentlyWatched {
			// earlier history entries weigh more
			weight := 1.0 / float64(ri+1)
			s += weight * affinity(w, c)
		}
		if s > 0 {
			ranked = append(ranked, scored{id: c.ID, score: s, pos: i})
		}
	}

	// stable order: score desc, then candidate order
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].pos < ranked[j].pos
	})

	limit := req.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	resp := Response{}
	for _, r := range ranked[:limit] {
		resp.TitleIDs = append(resp.TitleIDs, r.id)
		resp.Scores = append(resp.Scores, r.score)
	}
	return resp, nil
}

func affinity(watched, candidate TitleInput) float64 {
	s := 0.0
	if watched.Genre != "" && strings.EqualFold(watched.Genre, candidate.Genre) {
		s += 1.0
	}
	s += 0.5 * nameSimilarity(watched.Name, candidate.Name)
	if watched.Year != 0 && candidate.Year != 0 {
		gap := watched.Year - candidate.Year
		if gap < 0 {
			gap = -gap
		}
		if gap <= 3 {
			s += 0.2
		}
	}
	return s
}

// nameSimilarity maps levenshtein distance to [0,1].
func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	sim := 1 - float64(d)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

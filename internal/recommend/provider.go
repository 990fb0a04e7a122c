package recommend

import "context"

// Provider produces the "Because you watched" shelf.
type Provider interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

// Request carries the viewer's recent history and the candidate pool.
type Request struct {
	RecentlyWatched []TitleInput `json:"recently_watched"`
	Candidates      []TitleInput `json:"candidates"`
	Limit           int          `json:"limit"`
}

// TitleInput is the minimal title shape providers score against.
type TitleInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

// Response is a ranked list of title ids, best first.
type Response struct {
	TitleIDs []string  `json:"title_ids"`
	Scores   []float64 `json:"scores"`
}

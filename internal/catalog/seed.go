package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/jasktv/internal/catalog/repository"
)

type seedTitle struct {
	name  string
	genre string
	year  int
	mins  int
}

type seedShelf struct {
	name   string
	titles []seedTitle
}

// SeedDefaults populates a demo catalog for new databases. It is idempotent
// and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	shelfRepo := repository.NewShelfRepo(db)
	existing, err := shelfRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	titleRepo := repository.NewTitleRepo(db)
	shelves := []seedShelf{
		{name: "Trending Now", titles: []seedTitle{
			{"Signal Lost", "thriller", 2024, 104},
			{"The Long Orbit", "sci-fi", 2023, 131},
			{"Harvest Moon", "drama", 2025, 98},
			{"Copper Creek", "western", 2022, 117},
			{"Night Market", "documentary", 2024, 62},
			{"Second Wind", "sport", 2023, 89},
		}},
		{name: "Sci-Fi & Fantasy", titles: []seedTitle{
			{"Driftworld", "sci-fi", 2021, 122},
			{"The Cartographer", "fantasy", 2023, 140},
			{"Low Earth", "sci-fi", 2025, 95},
			{"Ashes of Arden", "fantasy", 2022, 128},
			{"Ultraviolet", "sci-fi", 2024, 101},
		}},
		{name: "Documentaries", titles: []seedTitle{
			{"Glass Cities", "documentary", 2023, 77},
			{"Deep Current", "documentary", 2024, 84},
			{"The Last Typeface", "documentary", 2022, 58},
			{"Fermata", "documentary", 2025, 91},
		}},
	}

	for si, s := range shelves {
		shelfID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("shelf:"+s.name)).String()
		if err := shelfRepo.Upsert(ctx, repository.Shelf{ID: shelfID, Name: s.name, SortOrder: si}); err != nil {
			return err
		}
		for ti, t := range s.titles {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("title:"+t.name)).String()
			title := repository.Title{ID: id, Name: t.name, Genre: t.genre, Year: t.year, DurationMin: t.mins}
			if err := titleRepo.Upsert(ctx, title); err != nil {
				return err
			}
			if err := shelfRepo.AttachTitle(ctx, shelfID, id, ti); err != nil {
				return err
			}
		}
	}
	return nil
}

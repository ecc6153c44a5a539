package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"hotelmatch/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullToPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	imgs, _ := json.Marshal(h.Images)
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		h.BookingLink,
		h.Rating,
		h.Address,
		h.Description,
		string(imgs),
		h.Lat,
		h.Lng,
		valF64(h.SubScores.Staff),
		valF64(h.SubScores.Facilities),
		valF64(h.SubScores.Cleanliness),
		valF64(h.SubScores.Comfort),
		valF64(h.SubScores.Value),
		valF64(h.SubScores.Location),
		valF64(h.SubScores.WiFi),
	)
	return err
}

func (r *Repo) UpsertEmbedding(ctx context.Context, id int64, vec []float64) error {
	b, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertEmbeddingSQL, string(b), id)
	return err
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return r.list(ctx, listHotelsSQL)
}

func (r *Repo) ListMissingEmbeddings(ctx context.Context) ([]domain.Hotel, error) {
	return r.list(ctx, listMissingEmbeddingsSQL)
}

func (r *Repo) list(ctx context.Context, query string) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var (
			h             domain.Hotel
			desc          sql.NullString
			imagesJSON    []byte
			embeddingJSON []byte
			staff, fac    sql.NullFloat64
			clean, comf   sql.NullFloat64
			value, loc    sql.NullFloat64
			wifi          sql.NullFloat64
		)
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.BookingLink,
			&h.Rating,
			&h.Address,
			&desc,
			&imagesJSON,
			&h.Lat,
			&h.Lng,
			&staff, &fac, &clean, &comf, &value, &loc, &wifi,
			&embeddingJSON,
		); err != nil {
			return nil, err
		}

		h.Description = desc.String

		// images is JSON text; an unreadable column degrades to an empty list
		// rather than failing the whole load.
		_ = json.Unmarshal(imagesJSON, &h.Images)
		if len(embeddingJSON) > 0 {
			if err := json.Unmarshal(embeddingJSON, &h.Embedding); err != nil {
				// leave Embedding nil; the catalog excludes the record with a
				// recorded reason
				h.Embedding = nil
			}
		}

		h.SubScores = domain.SubScores{
			Staff:       nullToPtr(staff),
			Facilities:  nullToPtr(fac),
			Cleanliness: nullToPtr(clean),
			Comfort:     nullToPtr(comf),
			Value:       nullToPtr(value),
			Location:    nullToPtr(loc),
			WiFi:        nullToPtr(wifi),
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

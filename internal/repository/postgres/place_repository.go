package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/errors"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// primaryImageSubquery selects the URL of the image with the lowest display
// order, which is the place's primary image.
const primaryImageSubquery = `(SELECT i.url FROM images i WHERE i.place_id = p.id ORDER BY i.display_order LIMIT 1)`

func (r *placeRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
	b := &whereBuilder{}
	b.add("p.language", "=", filter.Language)
	if filter.Province != "" {
		b.add("p.province", "=", filter.Province)
	}
	if filter.RecognitionType != "" {
		b.add("p.recognition_type", "=", filter.RecognitionType)
	}
	// The list view only shows places that have at least one image.
	b.addRaw("EXISTS (SELECT 1 FROM images i WHERE i.place_id = p.id)")

	// Random order is produced by the database so it is uniform over all
	// matching rows, not over the returned page.
	order := "ORDER BY p.name"
	if filter.Random {
		order = "ORDER BY RANDOM()"
	}

	query := fmt.Sprintf(`
		SELECT
			p.id, p.name, p.province, p.municipality, p.latitude, p.longitude,
			p.recognition_type, p.jurisdiction,
			%s AS primary_image
		FROM places p%s
		%s LIMIT %s OFFSET %s`,
		primaryImageSubquery, b.clause(), order, b.bind(filter.Limit), b.bind(filter.Offset),
	)

	var places []*domain.PlaceSummary
	if err := r.db.SelectContext(ctx, &places, query, b.arguments()...); err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id int64, language string) (*domain.Place, error) {
	query := `
		SELECT
			id, name, province, municipality, latitude, longitude,
			description, recognition_type, jurisdiction, recognition_date,
			architect, themes, language
		FROM places
		WHERE id = $1 AND language = $2`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id, language)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) ImagesByPlaceID(ctx context.Context, id int64) ([]*domain.Image, error) {
	query := `
		SELECT place_id, url, alt, title, display_order
		FROM images
		WHERE place_id = $1
		ORDER BY display_order`

	var images []*domain.Image
	if err := r.db.SelectContext(ctx, &images, query, id); err != nil {
		r.logger.Error("Failed to get images", zap.Int64("place_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return images, nil
}

func (r *placeRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error) {
	b := searchPredicates(filter)

	// The count runs over the same predicates without sort or pagination,
	// so the reported total reflects every matching row.
	countQuery := "SELECT COUNT(*) FROM places p" + b.clause()
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, b.arguments()...); err != nil {
		r.logger.Error("Failed to count search results", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT
			p.id, p.name, p.province, p.municipality, p.latitude, p.longitude,
			p.description, p.recognition_type, p.jurisdiction,
			p.recognition_date, p.architect,
			%s AS primary_image
		FROM places p%s
		%s LIMIT %s OFFSET %s`,
		primaryImageSubquery, b.clause(), orderClause(filter.Sort), b.bind(filter.Limit), b.bind(filter.Offset),
	)

	var results []*domain.PlaceSummary
	if err := r.db.SelectContext(ctx, &results, query, b.arguments()...); err != nil {
		r.logger.Error("Failed to search places", zap.String("query", filter.Query), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return results, total, nil
}

// searchPredicates turns the filter model into the shared predicate list for
// the count and data queries.
func searchPredicates(filter domain.SearchFilter) *whereBuilder {
	b := &whereBuilder{}
	b.add("p.language", "=", filter.Language)

	if filter.Query != "" {
		term := "%" + filter.Query + "%"
		b.addRaw(fmt.Sprintf(
			"(p.name ILIKE %s OR p.description ILIKE %s OR p.municipality ILIKE %s OR p.architect ILIKE %s)",
			b.bind(term), b.bind(term), b.bind(term), b.bind(term),
		))
	}

	if filter.Province != "" {
		b.add("p.province", "=", filter.Province)
	}
	if filter.Municipality != "" {
		b.add("p.municipality", "ILIKE", "%"+filter.Municipality+"%")
	}
	if filter.RecognitionType != "" {
		b.add("p.recognition_type", "=", filter.RecognitionType)
	}
	if filter.Jurisdiction != "" {
		b.add("p.jurisdiction", "=", filter.Jurisdiction)
	}
	if filter.Theme != "" {
		b.add("p.themes", "ILIKE", "%"+filter.Theme+"%")
	}
	if filter.Architect != "" {
		b.add("p.architect", "ILIKE", "%"+filter.Architect+"%")
	}

	// Year bounds compare the first four characters of the stored
	// recognition date as text. Malformed dates sort lexicographically;
	// inherited behavior, kept as is.
	if filter.MinYear > 0 {
		b.add("left(p.recognition_date, 4)", ">=", strconv.Itoa(filter.MinYear))
	}
	if filter.MaxYear > 0 {
		b.add("left(p.recognition_date, 4)", "<=", strconv.Itoa(filter.MaxYear))
	}

	return b
}

// orderClause maps the closed sort enum onto an ORDER BY. Non-random sorts
// are fully deterministic: name sorts break ties by id, date sorts by name.
func orderClause(sort domain.SortMode) string {
	switch sort {
	case domain.SortNewest:
		return "ORDER BY p.recognition_date DESC, p.name ASC"
	case domain.SortOldest:
		return "ORDER BY p.recognition_date ASC, p.name ASC"
	case domain.SortNameDesc:
		return "ORDER BY p.name DESC, p.id DESC"
	case domain.SortRandom:
		return "ORDER BY RANDOM()"
	default:
		return "ORDER BY p.name ASC, p.id ASC"
	}
}

func (r *placeRepository) Map(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error) {
	b := &whereBuilder{}
	b.add("p.language", "=", filter.Language)
	b.addRaw("p.latitude IS NOT NULL")
	b.addRaw("p.longitude IS NOT NULL")

	if bounds := filter.Bounds; bounds != nil {
		b.addRaw(fmt.Sprintf("p.latitude BETWEEN %s AND %s", b.bind(bounds.MinLat), b.bind(bounds.MaxLat)))
		b.addRaw(fmt.Sprintf("p.longitude BETWEEN %s AND %s", b.bind(bounds.MinLng), b.bind(bounds.MaxLng)))
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.province, p.municipality, p.latitude, p.longitude
		FROM places p%s
		LIMIT %d`, b.clause(), domain.MapRowCap,
	)

	var places []*domain.MapPlace
	if err := r.db.SelectContext(ctx, &places, query, b.arguments()...); err != nil {
		r.logger.Error("Failed to load map places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

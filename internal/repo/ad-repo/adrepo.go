package adrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const adColumns = `id, loader_id, asset_type, deal_amount, loading_terms, upfront_percentage,
	countdown_time, payment_methods, frozen_commitment, loader_fee_reserve, is_active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAd(row pgx.Row) (*domain.LoaderAd, error) {
	var ad domain.LoaderAd
	err := row.Scan(
		&ad.ID, &ad.LoaderID, &ad.AssetType, &ad.DealAmount, &ad.LoadingTerms, &ad.UpfrontPercentage,
		&ad.CountdownTime, &ad.PaymentMethods, &ad.FrozenCommitment, &ad.LoaderFeeReserve, &ad.IsActive, &ad.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *Repository) Create(ctx context.Context, ad *domain.LoaderAd) (*domain.LoaderAd, error) {
	query := `
		INSERT INTO loader_ads (loader_id, asset_type, deal_amount, loading_terms, upfront_percentage,
			countdown_time, payment_methods, frozen_commitment, loader_fee_reserve, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		RETURNING ` + adColumns
	created, err := scanAd(r.db.QueryRow(ctx, query,
		ad.LoaderID, ad.AssetType, ad.DealAmount, ad.LoadingTerms, ad.UpfrontPercentage,
		ad.CountdownTime, ad.PaymentMethods, ad.FrozenCommitment, ad.LoaderFeeReserve,
	))
	if err != nil {
		zap.L().Error("can't save ad", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.LoaderAd, error) {
	return r.get(ctx, "SELECT "+adColumns+" FROM loader_ads WHERE id = $1", id)
}

// GetForUpdate locks the ad so cancel and accept cannot both win.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.LoaderAd, error) {
	return r.get(ctx, "SELECT "+adColumns+" FROM loader_ads WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.LoaderAd, error) {
	ad, err := scanAd(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (r *Repository) Deactivate(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE loader_ads SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("failed to deactivate ad", zap.Error(err))
		return err
	}
	return nil
}

// ListActive returns open ads, newest first. An empty assetType matches every asset.
func (r *Repository) ListActive(ctx context.Context, assetType string) ([]domain.LoaderAd, error) {
	query := `
		SELECT ` + adColumns + `
		FROM loader_ads
		WHERE is_active AND ($1 = '' OR asset_type = $1)
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, assetType)
	if err != nil {
		zap.L().Error("can't get ads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ads []domain.LoaderAd
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			zap.L().Error("can't scan ad row", zap.Error(err))
			return nil, err
		}
		ads = append(ads, *ad)
	}
	return ads, rows.Err()
}

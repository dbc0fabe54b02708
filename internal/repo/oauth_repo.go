package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/dbutil"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
)

type OAuthRepo struct {
	db *sql.DB
}

func NewOAuthRepo(db *sql.DB) *OAuthRepo {
	return &OAuthRepo{db: db}
}

var oauthAccountFields = []string{"id", "user_id", "provider", "provider_user_id", "email", "ctime", "mtime"}

func (r *OAuthRepo) Create(ctx context.Context, account *model.OAuthAccount) error {
	data := map[string]interface{}{
		"id":               account.ID,
		"user_id":          account.UserID,
		"provider":         account.Provider,
		"provider_user_id": account.ProviderUserID,
		"email":            account.Email,
		"ctime":            account.Ctime,
		"mtime":            account.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("oauth_accounts", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *OAuthRepo) GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*model.OAuthAccount, error) {
	return r.getOne(ctx, map[string]interface{}{
		"provider":         provider,
		"provider_user_id": providerUserID,
	})
}

func (r *OAuthRepo) GetByUserProvider(ctx context.Context, userID, provider string) (*model.OAuthAccount, error) {
	return r.getOne(ctx, map[string]interface{}{
		"user_id":  userID,
		"provider": provider,
	})
}

func (r *OAuthRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.OAuthAccount, error) {
	sqlStr, args, err := builder.BuildSelect("oauth_accounts", where, oauthAccountFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var account model.OAuthAccount
	if err := rows.Scan(&account.ID, &account.UserID, &account.Provider, &account.ProviderUserID, &account.Email, &account.Ctime, &account.Mtime); err != nil {
		return nil, err
	}
	return &account, nil
}

package store

import (
	"fmt"

	"github.com/MKhiriev/go-call-recorder/models"
	"github.com/Masterminds/squirrel"
)

var (
	callColumns = []string{"id", "title", "description", "keywords", "user_id", "base64", "created_at", "updated_at"}
	userColumns = []string{"id", "email", "first_name", "team", "created_at"}
)

func buildCreateCallQuery(builder squirrel.StatementBuilderType, call models.Call) (string, []any, error) {
	query, args, err := builder.
		Insert(call.TableName()).
		Columns(callColumns...).
		Values(call.ID, call.Title, call.Description, call.Keywords, call.UserID, call.Base64, call.CreatedAt, call.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetCallQuery(builder squirrel.StatementBuilderType, callID string) (string, []any, error) {
	query, args, err := builder.
		Select(callColumns...).
		From(models.Call{}.TableName()).
		Where(squirrel.Eq{"id": callID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByIDQuery(builder squirrel.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

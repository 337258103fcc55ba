package tables

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/localization"
	redisclient "github.com/swgoh-tools/statcalc/internal/redis"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

const (
	gameKeyPrefix  = "gamedata:game:"
	statsKeyPrefix = "gamedata:languages:"
	unitsKeyPrefix = "gamedata:units:"
	versionKey     = "gamedata:version"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed game data repository. Entries
// are stored without expiry; a data version is only replaced by the next
// successful save.
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) setJSON(ctx context.Context, pipe redis.Pipeliner, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	pipe.Set(ctx, key, data, 0)
	return nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, v any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s not found", key)
		}
		return errors.Wrapf(err, "failed to get %s", key)
	}
	if err := json.Unmarshal([]byte(result), v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", key)
	}
	return nil
}

func (r *redisRepository) SaveTables(ctx context.Context, input SaveTablesInput) (*SaveTablesOutput, error) {
	if input.Tables == nil {
		return nil, errors.InvalidArgument(errTablesNil)
	}

	pipe := r.client.TxPipeline()
	for stem, section := range tableSections(input.Tables) {
		if err := r.setJSON(ctx, pipe, gameKeyPrefix+stem, section); err != nil {
			return nil, err
		}
	}
	if err := r.setJSON(ctx, pipe, versionKey, input.Tables.Version); err != nil {
		return nil, err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save tables")
	}
	return &SaveTablesOutput{}, nil
}

func (r *redisRepository) LoadTables(ctx context.Context, _ LoadTablesInput) (*LoadTablesOutput, error) {
	tables := &swgoh.Tables{}
	for stem, section := range tableSections(tables) {
		if err := r.getJSON(ctx, gameKeyPrefix+stem, section); err != nil {
			return nil, err
		}
	}
	if err := r.getJSON(ctx, versionKey, &tables.Version); err != nil {
		return nil, err
	}
	return &LoadTablesOutput{Tables: tables}, nil
}

func (r *redisRepository) SaveNames(ctx context.Context, input SaveNamesInput) (*SaveNamesOutput, error) {
	if input.Language == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}
	if input.Names == nil {
		return nil, errors.InvalidArgument(errNamesNil)
	}

	lang := normalizeLang(input.Language)
	pipe := r.client.TxPipeline()
	if err := r.setJSON(ctx, pipe, statsKeyPrefix+lang, input.Names.StatNames); err != nil {
		return nil, err
	}
	if err := r.setJSON(ctx, pipe, unitsKeyPrefix+lang, input.Names.UnitNames); err != nil {
		return nil, err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save names for %s", lang)
	}
	return &SaveNamesOutput{}, nil
}

func (r *redisRepository) LoadNames(ctx context.Context, input LoadNamesInput) (*LoadNamesOutput, error) {
	if input.Language == "" {
		return nil, errors.InvalidArgument(errLanguageEmpty)
	}

	lang := normalizeLang(input.Language)
	names := &localization.Names{}
	if err := r.getJSON(ctx, statsKeyPrefix+lang, &names.StatNames); err != nil {
		return nil, err
	}
	if err := r.getJSON(ctx, unitsKeyPrefix+lang, &names.UnitNames); err != nil {
		return nil, err
	}
	return &LoadNamesOutput{Names: names}, nil
}

func (r *redisRepository) Version(ctx context.Context, _ VersionInput) (*VersionOutput, error) {
	var version swgoh.DataVersion
	if err := r.getJSON(ctx, versionKey, &version); err != nil {
		return nil, err
	}
	return &VersionOutput{Version: &version}, nil
}

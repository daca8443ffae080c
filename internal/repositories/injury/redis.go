package injury

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/injurybot/internal/calendar"
	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/repositories"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	injuryKeyPrefix       = "injury:"
	activeKeyPrefix       = "injury:active:"  // injury:active:<season>:<player> -> injury ID
	seasonIndexPrefix     = "injuries:season:" // injuries:season:<season> -> list of injury IDs
	playerSeasonIndexPart = ":player:"         // injuries:season:<season>:player:<player>
	playerActivePrefix    = "injury:returns:"  // injury:returns:<player> -> season -> w##g# end

	// maxTxAttempts bounds retries when a watched key changes mid-transaction
	maxTxAttempts = 3
)

var (
	// ErrInjuryNotFound is returned when an injury is not found
	ErrInjuryNotFound = crerr.New("injury not found")

	// ErrActiveInjuryExists is returned when a player already has an active injury at commit
	ErrActiveInjuryExists = crerr.New("player already has an active injury")

	// ErrInjuryNotActive is returned when deactivating an injury that is already cleared
	ErrInjuryNotActive = crerr.New("injury is not active")

	// ErrPersistenceFailure marks every error from the underlying store
	ErrPersistenceFailure = repositories.ErrPersistenceFailure
)

// Config holds configuration for the Redis injury repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed injury repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func injuryKey(id string) string {
	return injuryKeyPrefix + id
}

func activeKey(season int, playerID string) string {
	return fmt.Sprintf("%s%d:%s", activeKeyPrefix, season, playerID)
}

func seasonIndexKey(season int) string {
	return fmt.Sprintf("%s%d", seasonIndexPrefix, season)
}

func playerSeasonIndexKey(season int, playerID string) string {
	return fmt.Sprintf("%s%d%s%s", seasonIndexPrefix, season, playerSeasonIndexPart, playerID)
}

func playerActiveKey(playerID string) string {
	return playerActivePrefix + playerID
}

// latestReturn picks the end of the newest season's active injury, empty when
// the player has none
func latestReturn(ends map[string]string) string {
	latest, ilReturn := 0, ""
	for field, end := range ends {
		season, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if season > latest {
			latest, ilReturn = season, end
		}
	}
	return ilReturn
}

// setILReturn queues the write of the player's return date, or its removal
// when no active injury is left
func setILReturn(ctx context.Context, pipe redis.Pipeliner, playerID, ilReturn string) {
	if ilReturn == "" {
		pipe.HDel(ctx, playerRepo.Key(playerID), playerRepo.FieldILReturn)
		return
	}
	pipe.HSet(ctx, playerRepo.Key(playerID), playerRepo.FieldILReturn, ilReturn)
}

func storeErr(err error, msg string) error {
	return repositories.StoreError(err, msg)
}

// CreateInjury stores a new active injury. The active-injury key is watched so
// a concurrent create for the same player and season loses at commit. The
// player's return date follows the newest season with an active injury.
func (r *redisRepository) CreateInjury(ctx context.Context, input *CreateInjuryInput) error {
	if input == nil || input.Injury == nil {
		return errors.New("input and injury cannot be nil")
	}

	injury := input.Injury
	if injury.ID == "" || injury.PlayerID == "" {
		return errors.New("injury ID and player ID cannot be empty")
	}

	injuryJSON, err := json.Marshal(toRecord(injury))
	if err != nil {
		return fmt.Errorf("failed to marshal injury: %w", err)
	}

	active := activeKey(injury.Season, injury.PlayerID)
	returns := playerActiveKey(injury.PlayerID)
	season := strconv.Itoa(injury.Season)
	end := calendar.Format(injury.End)

	txn := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, active).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrActiveInjuryExists
		}

		ends, err := tx.HGetAll(ctx, returns).Result()
		if err != nil {
			return err
		}
		ends[season] = end

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, injuryKey(injury.ID), injuryJSON, 0)
			pipe.Set(ctx, active, injury.ID, 0)
			pipe.RPush(ctx, seasonIndexKey(injury.Season), injury.ID)
			pipe.RPush(ctx, playerSeasonIndexKey(injury.Season, injury.PlayerID), injury.ID)
			pipe.HSet(ctx, returns, season, end)
			setILReturn(ctx, pipe, injury.PlayerID, latestReturn(ends))
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.client.Watch(ctx, txn, active, returns)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		break
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrActiveInjuryExists):
		return ErrActiveInjuryExists
	case errors.Is(err, redis.TxFailedErr):
		// the watched keys kept changing under us
		return ErrActiveInjuryExists
	default:
		return storeErr(err, "failed to save injury")
	}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) getInjury(ctx context.Context, client getter, id string) (*models.Injury, error) {
	injuryJSON, err := client.Get(ctx, injuryKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrInjuryNotFound
		}
		return nil, storeErr(err, "failed to get injury")
	}

	var rec record
	if err := json.Unmarshal([]byte(injuryJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal injury: %w", err)
	}

	return rec.toModel(), nil
}

// GetActiveInjury retrieves the player's active injury for a season
func (r *redisRepository) GetActiveInjury(ctx context.Context, input *GetActiveInjuryInput) (*models.Injury, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	injuryID, err := r.client.Get(ctx, activeKey(input.Season, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrInjuryNotFound
		}
		return nil, storeErr(err, "failed to get active injury")
	}

	return r.getInjury(ctx, r.client, injuryID)
}

// DeactivateInjury marks an injury cleared and drops the active pointer in one
// transaction. The player's return date falls back to another season's active
// injury, or is blanked when none is left.
func (r *redisRepository) DeactivateInjury(ctx context.Context, input *DeactivateInjuryInput) (*models.Injury, error) {
	if input == nil || input.InjuryID == "" {
		return nil, errors.New("input and injury ID cannot be empty")
	}

	key := injuryKey(input.InjuryID)

	// the player never changes, so the returns hash to watch is known up front
	current, err := r.getInjury(ctx, r.client, input.InjuryID)
	if err != nil {
		return nil, err
	}
	returns := playerActiveKey(current.PlayerID)

	var cleared *models.Injury
	txn := func(tx *redis.Tx) error {
		injury, err := r.getInjury(ctx, tx, input.InjuryID)
		if err != nil {
			return err
		}
		if !injury.IsActive {
			return ErrInjuryNotActive
		}

		ends, err := tx.HGetAll(ctx, returns).Result()
		if err != nil {
			return err
		}
		season := strconv.Itoa(injury.Season)
		delete(ends, season)

		injury.IsActive = false
		injury.ClearedAt = input.ClearedAt

		injuryJSON, err := json.Marshal(toRecord(injury))
		if err != nil {
			return fmt.Errorf("failed to marshal injury: %w", err)
		}

		active := activeKey(injury.Season, injury.PlayerID)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, injuryJSON, 0)
			pipe.Del(ctx, active)
			pipe.HDel(ctx, returns, season)
			setILReturn(ctx, pipe, injury.PlayerID, latestReturn(ends))
			return nil
		})
		if err != nil {
			return err
		}

		cleared = injury
		return nil
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.client.Watch(ctx, txn, key, returns)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		break
	}

	switch {
	case err == nil:
		return cleared, nil
	case errors.Is(err, ErrInjuryNotFound), errors.Is(err, ErrInjuryNotActive), errors.Is(err, ErrPersistenceFailure):
		return nil, err
	default:
		return nil, storeErr(err, "failed to deactivate injury")
	}
}

// ListInjuries retrieves a season's injuries, active and cleared, oldest first
func (r *redisRepository) ListInjuries(ctx context.Context, input *ListInjuriesInput) (*ListInjuriesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	indexKey := seasonIndexKey(input.Season)
	if input.PlayerID != "" {
		indexKey = playerSeasonIndexKey(input.Season, input.PlayerID)
	}

	injuryIDs, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, storeErr(err, "failed to get injury IDs")
	}

	if len(injuryIDs) == 0 {
		return &ListInjuriesOutput{
			Injuries: []*models.Injury{},
		}, nil
	}

	// Get all injuries in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(injuryIDs))
	for i, id := range injuryIDs {
		cmds[i] = pipe.Get(ctx, injuryKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, storeErr(err, "failed to get injuries")
	}

	injuries := make([]*models.Injury, 0, len(injuryIDs))
	for i, cmd := range cmds {
		injuryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, storeErr(err, fmt.Sprintf("failed to get injury %s", injuryIDs[i]))
		}

		var rec record
		if err := json.Unmarshal([]byte(injuryJSON), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal injury %s: %w", injuryIDs[i], err)
		}
		injuries = append(injuries, rec.toModel())
	}

	return &ListInjuriesOutput{
		Injuries: injuries,
	}, nil
}

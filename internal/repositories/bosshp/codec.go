package bosshp

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

type recordData struct {
	HP         *int64    `json:"hp"`
	ObservedAt time.Time `json:"observedAt"`
}

// Key returns the storage key for a boss
func Key(bossID int64) string {
	return KeyPrefix + strconv.FormatInt(bossID, 10)
}

func parseKey(key string) (int64, bool) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(key, KeyPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func validateBossID(bossID int64) error {
	if bossID <= 0 {
		return errors.InvalidArgumentf("invalid boss id %d", bossID)
	}
	return nil
}

func encodeRecord(hp int64, at time.Time) (string, error) {
	if hp < 0 {
		return "", errors.InvalidArgumentf("hp cannot be negative: %d", hp)
	}
	raw, err := json.Marshal(recordData{HP: &hp, ObservedAt: at.UTC()})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal hp record")
	}
	return string(raw), nil
}

// decodeRecord reads the JSON form and the bare integer written by older clients
func decodeRecord(bossID int64, value string) (*Record, error) {
	value = strings.TrimSpace(value)
	if hp, err := strconv.ParseInt(value, 10, 64); err == nil && hp >= 0 {
		return &Record{BossID: bossID, HP: hp}, nil
	}

	var data recordData
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		return nil, errors.Wrapf(err, "corrupted hp record for boss %d", bossID)
	}
	if data.HP == nil || *data.HP < 0 {
		return nil, errors.Internalf("corrupted hp record for boss %d", bossID)
	}
	return &Record{BossID: bossID, HP: *data.HP, ObservedAt: data.ObservedAt}, nil
}

type rawEntry struct {
	key   string
	value string
}

// decodeAll splits entries into readable records and corrupted keys
func decodeAll(entries []rawEntry) *ListOutput {
	out := &ListOutput{}
	for _, e := range entries {
		id, ok := parseKey(e.key)
		if !ok {
			out.Corrupted = append(out.Corrupted, e.key)
			continue
		}
		rec, err := decodeRecord(id, e.value)
		if err != nil {
			out.Corrupted = append(out.Corrupted, e.key)
			continue
		}
		out.Records = append(out.Records, rec)
	}

	sort.Slice(out.Records, func(i, j int) bool { return out.Records[i].BossID < out.Records[j].BossID })
	sort.Strings(out.Corrupted)
	return out
}

package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"Tripcast-App/internal/domain/model"
)

// kvStoreTable 保存データを格納するキーバリューテーブル
const kvStoreTable = "kv_store"

// kvRecord kv_store の1行
type kvRecord struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// selectionKey は保存データのキー selection:{owner}:{id} を作る
func selectionKey(ownerID, id string) string {
	return selectionPrefix(ownerID) + id
}

func selectionPrefix(ownerID string) string {
	return fmt.Sprintf("selection:%s:", ownerID)
}

// escapeLike は LIKE のワイルドカードをエスケープする
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func decodeSelections(records []kvRecord) ([]model.SavedSelection, error) {
	selections := make([]model.SavedSelection, 0, len(records))
	for _, rec := range records {
		var s model.SavedSelection
		if err := json.Unmarshal(rec.Value, &s); err != nil {
			return nil, fmt.Errorf("保存データのJSONアンマーシャル失敗 (%s): %w", rec.Key, err)
		}
		selections = append(selections, s)
	}
	sortSelections(selections)
	return selections, nil
}

// sortSelections は新しい順に並べる
func sortSelections(selections []model.SavedSelection) {
	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].CreatedAt.After(selections[j].CreatedAt)
	})
}
